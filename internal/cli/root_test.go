package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoot(t *testing.T) {
	root := NewRoot()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	down, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.NotNil(t, down.Flags().Lookup("steps"))

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, defaultConfigPath, flag.DefValue)
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	root := NewRoot()
	root.SetArgs([]string{"migrate", "down", "--steps", "0", "--config", "absent.toml"})

	err := root.Execute()

	assert.ErrorContains(t, err, "--steps must be positive")
}
