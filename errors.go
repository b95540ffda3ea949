package amqpoptions

import (
	"errors"
)

// ErrUnknownConfigurationName occures when a lookup names a configuration that was never registered.
var ErrUnknownConfigurationName = errors.New("unknown configuration name")

// ErrNameIsExist occures when two entries are registered under the same name.
var ErrNameIsExist = errors.New("configuration name already registered")

// ErrEmptyName occures when an entry is registered without a name.
var ErrEmptyName = errors.New("configuration name must not be empty")

// ErrInvalidOptions occures when connection options are missing a field or hold an out of range value.
var ErrInvalidOptions = errors.New("invalid connection options")

// ErrNoActiveConnection occures when a channel is requested from a closed connection.
var ErrNoActiveConnection = errors.New("no active connection to the broker")
