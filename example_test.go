package amqpoptions_test

import (
	"errors"
	"fmt"

	"github.com/Wr4thon/amqpoptions"
)

func ExampleRegistry_GetByName() {
	registry, err := amqpoptions.NewDefaultRegistry(amqpoptions.WithRegistryOptionLogger(quietLogger()))
	if err != nil {
		panic(err)
	}

	options, err := registry.GetByName(amqpoptions.TopicConfigName)
	if err != nil {
		panic(err)
	}

	fmt.Println(options)

	_, err = registry.GetByName("nonexistent")
	fmt.Println(errors.Is(err, amqpoptions.ErrUnknownConfigurationName))

	// Output:
	// amqp://smallrye:<secret>@localhost:5672/
	// true
}
