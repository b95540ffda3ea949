package amqpoptions

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Registry maps logical configuration names to connection options.
//
// The table is filled once by NewRegistry and never written again, so a
// Registry can be shared by any number of goroutines without locking.
type Registry struct {
	logger  *logger
	entries map[string]ConnectionOptions
	names   []string
}

// NewRegistry creates a new Registry from the given options.
//
// It fails if a name is empty or registered twice, or if any options do not validate.
// No partially filled Registry is ever returned.
func NewRegistry(options ...RegistryOption) (*Registry, error) {
	const errMessage = "failed to create registry"

	opt := defaultRegistryOptions()

	for i := 0; i < len(options); i++ {
		options[i](opt)
	}

	r := &Registry{
		logger:  newLogger(opt.Logger),
		entries: make(map[string]ConnectionOptions, len(opt.entries)),
		names:   make([]string, 0, len(opt.entries)),
	}

	for _, e := range opt.entries {
		if e.name == "" {
			return nil, errors.Wrap(ErrEmptyName, errMessage)
		}

		if _, ok := r.entries[e.name]; ok {
			return nil, errors.Wrapf(ErrNameIsExist, "%s: %q", errMessage, e.name)
		}

		if err := e.options.Validate(); err != nil {
			return nil, errors.Wrapf(err, "%s: %q", errMessage, e.name)
		}

		r.entries[e.name] = e.options
		r.names = append(r.names, e.name)

		r.logger.logDebug("registered connection options %q: %s", e.name, e.options)
	}

	sort.Strings(r.names)

	return r, nil
}

// GetByName returns the options registered under name.
//
// An unregistered name yields the zero value and an error wrapping ErrUnknownConfigurationName.
func (r *Registry) GetByName(name string) (ConnectionOptions, error) {
	options, ok := r.entries[name]
	if !ok {
		r.logger.logWarn("lookup of unregistered connection options %q", name)

		return ConnectionOptions{}, errors.Wrapf(ErrUnknownConfigurationName, "%q", name)
	}

	return options, nil
}

// MustGetByName is like GetByName but panics if name is not registered.
func (r *Registry) MustGetByName(name string) ConnectionOptions {
	options, err := r.GetByName(name)
	if err != nil {
		panic(fmt.Sprintf("amqpoptions: %v", err))
	}

	return options
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]

	return ok
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)

	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.entries)
}
