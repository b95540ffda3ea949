package amqpoptions_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wr4thon/amqpoptions"
)

const defaultTable = `
connections:
  my-topic-config:
    host: localhost
    port: 5672
    username: smallrye
    password: smallrye
  my-topic-config2:
    host: localhost
    port: 5672
    username: smallrye
    password: smallrye
`

func Test_LoadRegistry(t *testing.T) {
	t.Parallel()

	loaded, err := amqpoptions.LoadRegistry(
		strings.NewReader(defaultTable),
		amqpoptions.WithRegistryOptionLogger(quietLogger()),
	)
	require.NoError(t, err)

	defaults, err := amqpoptions.NewDefaultRegistry(amqpoptions.WithRegistryOptionLogger(quietLogger()))
	require.NoError(t, err)

	require.Equal(t, defaults.Names(), loaded.Names())

	for _, name := range defaults.Names() {
		require.Equal(t, defaults.MustGetByName(name), loaded.MustGetByName(name))
	}
}

func Test_LoadRegistry_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		document    string
		expectedErr error
	}{
		"unknown key": {
			document: `
connections:
  a:
    host: localhost
    port: 5672
    username: smallrye
    password: smallrye
    vhost: /
`,
		},
		"missing password": {
			document: `
connections:
  a:
    host: localhost
    port: 5672
    username: smallrye
`,
			expectedErr: amqpoptions.ErrInvalidOptions,
		},
		"port out of range": {
			document: `
connections:
  a:
    host: localhost
    port: 70000
    username: smallrye
    password: smallrye
`,
			expectedErr: amqpoptions.ErrInvalidOptions,
		},
		"not a mapping": {
			document: `connections: [a, b]`,
		},
	}

	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			registry, err := amqpoptions.LoadRegistry(
				strings.NewReader(test.document),
				amqpoptions.WithRegistryOptionLogger(quietLogger()),
			)
			require.Error(t, err)
			require.Nil(t, registry)

			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
			}
		})
	}
}

func Test_LoadRegistry_Empty(t *testing.T) {
	t.Parallel()

	registry, err := amqpoptions.LoadRegistry(strings.NewReader(""), amqpoptions.WithRegistryOptionLogger(quietLogger()))
	require.NoError(t, err)
	require.Zero(t, registry.Len())
}

func Test_LoadRegistryFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "connections.yaml")
	require.NoError(t, os.WriteFile(path, []byte(defaultTable), 0o600))

	registry, err := amqpoptions.LoadRegistryFile(path, amqpoptions.WithRegistryOptionLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, 2, registry.Len())

	_, err = amqpoptions.LoadRegistryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
