package amqpoptions

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the document layout read by LoadRegistry.
//
//	connections:
//	  my-topic-config:
//	    host: localhost
//	    port: 5672
//	    username: smallrye
//	    password: smallrye
type File struct {
	Connections map[string]ConnectionOptions `yaml:"connections"`
}

// LoadRegistry decodes a YAML document from r and creates a Registry from its connections.
//
// Unknown keys are rejected. The given options are applied after the decoded entries.
func LoadRegistry(r io.Reader, options ...RegistryOption) (*Registry, error) {
	const errMessage = "failed to load registry"

	var file File

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errMessage)
	}

	registry, err := NewRegistry(append(
		[]RegistryOption{WithRegistryOptionEntries(file.Connections)},
		options...,
	)...)
	if err != nil {
		return nil, errors.Wrap(err, errMessage)
	}

	return registry, nil
}

// LoadRegistryFile is LoadRegistry reading from the file at path.
func LoadRegistryFile(path string, options ...RegistryOption) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	return LoadRegistry(f, options...)
}
