package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/dpcl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvPort, "")

	cfg := config.FromEnv()
	assert.Equal(t, config.DefaultFile, cfg.File)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultPort, cfg.Port)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(config.EnvFile, "build.json")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvPort, "9090")

	cfg := config.FromEnv()
	assert.Equal(t, "build.json", cfg.File)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_DotEnv(t *testing.T) {
	// t.Setenv registers cleanup; unset afterwards so godotenv can fill the value.
	t.Setenv(config.EnvPort, "")
	require.NoError(t, os.Unsetenv(config.EnvPort))
	t.Setenv(config.EnvLogLevel, "warn")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DPCL_PORT=7070\nDPCL_LOG_LEVEL=debug\n"), 0o644))

	cfg := config.Load(path)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel, "process environment wins over .env")
}

func TestLoad_MissingDotEnv(t *testing.T) {
	t.Setenv(config.EnvPort, "")
	cfg := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Equal(t, config.DefaultPort, cfg.Port)
}
