package amqpoptions

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/common/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	minPort = 1
	maxPort = 65535

	defaultScheme = "amqp"
	defaultVhost  = "/"

	redacted = "<secret>"
)

// ConnectionOptions holds everything needed to reach a broker endpoint.
//
// It is a plain value: copying it is safe and it owns no sockets or handles.
type ConnectionOptions struct {
	// Host contains the hostname or ip of the broker.
	Host string `json:"host" yaml:"host"`
	// Port contains the port number the broker is listening on.
	Port int `json:"port" yaml:"port"`
	// UserName contains the name of the broker user.
	UserName string `json:"username" yaml:"username"`
	// Password contains the password of the broker user.
	// It is rendered as <secret> whenever the options are marshalled.
	Password config.Secret `json:"password" yaml:"password"`
}

// Validate reports the first field that is missing or out of range.
func (o ConnectionOptions) Validate() error {
	switch {
	case o.Host == "":
		return errors.Wrap(ErrInvalidOptions, "host is empty")
	case o.Port < minPort || o.Port > maxPort:
		return errors.Wrapf(ErrInvalidOptions, "port %d is outside %d-%d", o.Port, minPort, maxPort)
	case o.UserName == "":
		return errors.Wrap(ErrInvalidOptions, "username is empty")
	case o.Password == "":
		return errors.Wrap(ErrInvalidOptions, "password is empty")
	}

	return nil
}

// Address returns host:port.
func (o ConnectionOptions) Address() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// URI returns the AMQP 0-9-1 connection string for the default vhost.
func (o ConnectionOptions) URI() string {
	uri := amqp.URI{
		Scheme:   defaultScheme,
		Host:     o.Host,
		Port:     o.Port,
		Username: o.UserName,
		Password: string(o.Password),
		Vhost:    defaultVhost,
	}

	return uri.String()
}

// String returns the connection string with the password redacted.
func (o ConnectionOptions) String() string {
	return fmt.Sprintf("%s://%s:%s@%s/",
		defaultScheme,
		url.QueryEscape(o.UserName),
		redacted,
		o.Address(),
	)
}
