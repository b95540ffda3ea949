package amqpoptions

const (
	// TopicConfigName is the name the first topic consumer looks its options up by.
	TopicConfigName = "my-topic-config"
	// TopicConfigName2 is the name the second topic consumer looks its options up by.
	TopicConfigName2 = "my-topic-config2"
)

// DefaultConnectionOptions returns the options of a local broker.
func DefaultConnectionOptions() ConnectionOptions {
	return ConnectionOptions{
		Host:     "localhost",
		Port:     5672,
		UserName: "smallrye",
		Password: "smallrye",
	}
}

// NewDefaultRegistry creates a Registry holding TopicConfigName and TopicConfigName2.
//
// Both names hold equal but independent copies of DefaultConnectionOptions.
// Additional options are applied after the defaults.
func NewDefaultRegistry(options ...RegistryOption) (*Registry, error) {
	defaults := []RegistryOption{
		WithRegistryOptionEntry(TopicConfigName, DefaultConnectionOptions()),
		WithRegistryOptionEntry(TopicConfigName2, DefaultConnectionOptions()),
	}

	return NewRegistry(append(defaults, options...)...)
}
