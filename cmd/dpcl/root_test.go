package main

import (
	"testing"

	"github.com/aretw0/dpcl/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlaggedCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("file", config.DefaultFile, "")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "")
	cmd.Flags().String("port", config.DefaultPort, "")
	return cmd
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv(config.EnvFile, "from-env.yaml")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvPort, "9999")

	cmd := newFlaggedCommand()
	require.NoError(t, cmd.Flags().Set("file", "from-flag.yaml"))
	require.NoError(t, cmd.Flags().Set("port", "7000"))

	cfg := resolveConfig(cmd)
	assert.Equal(t, "from-flag.yaml", cfg.File)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel, "unset flag keeps the environment value")
}

func TestResolveConfig_NoPortFlag(t *testing.T) {
	t.Setenv(config.EnvPort, "")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("file", config.DefaultFile, "")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "")

	cfg := resolveConfig(cmd)
	assert.Equal(t, config.DefaultPort, cfg.Port)
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"inspect", "graph", "deps", "validate", "serve", "mcp", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestMCPTransportFlags(t *testing.T) {
	transport := mcpCmd.Flags().Lookup("transport")
	require.NotNil(t, transport)
	assert.Equal(t, "stdio", transport.DefValue)

	port := mcpCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, config.DefaultPort, port.DefValue)
}
