package amqpoptions

import (
	"github.com/labstack/gommon/log"
)

type (
	RegistryOption func(*RegistryOptions)

	// RegistryOptions are used to describe how a new Registry will be created.
	RegistryOptions struct {
		Logger  *log.Logger
		entries []entry
	}

	entry struct {
		name    string
		options ConnectionOptions
	}
)

func defaultRegistryOptions() *RegistryOptions {
	return &RegistryOptions{}
}

// WithRegistryOptionEntry registers options under the given name.
//
// Registering the same name twice makes NewRegistry fail with ErrNameIsExist.
func WithRegistryOptionEntry(name string, options ConnectionOptions) RegistryOption {
	return func(o *RegistryOptions) {
		o.entries = append(o.entries, entry{name: name, options: options})
	}
}

// WithRegistryOptionEntries registers every entry of the given map.
func WithRegistryOptionEntries(entries map[string]ConnectionOptions) RegistryOption {
	return func(o *RegistryOptions) {
		for name, options := range entries {
			o.entries = append(o.entries, entry{name: name, options: options})
		}
	}
}

// WithRegistryOptionLogger sets the logger.
//
// The default logger writes to Stdout at WARN level.
func WithRegistryOptionLogger(logger *log.Logger) RegistryOption {
	return func(o *RegistryOptions) { o.Logger = logger }
}
