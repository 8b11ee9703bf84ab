// Package config resolves CLI settings from the environment and an optional .env file.
package config

import (
	"log/slog"
	"os"

	"github.com/aretw0/dpcl/internal/logging"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvFile     = "DPCL_FILE"
	EnvLogLevel = "DPCL_LOG_LEVEL"
	EnvPort     = "DPCL_PORT"
)

// Defaults applied when neither the environment nor a flag provides a value.
const (
	DefaultFile     = "dpcl.yaml"
	DefaultLogLevel = "info"
	DefaultPort     = "8080"
)

// Config holds the settings shared by every dpcl subcommand.
type Config struct {
	File     string
	LogLevel string
	Port     string
}

// Load reads .env files (missing files are ignored), then the process environment.
// Variables already set in the environment win over .env entries.
func Load(dotenv ...string) Config {
	_ = godotenv.Load(dotenv...)
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		File:     getenv(EnvFile, DefaultFile),
		LogLevel: getenv(EnvLogLevel, DefaultLogLevel),
		Port:     getenv(EnvPort, DefaultPort),
	}
}

// Logger builds the application logger for the configured level.
// An unknown level falls back to info and is reported through the returned logger.
func (c Config) Logger() *slog.Logger {
	level, err := logging.ParseLevel(c.LogLevel)
	logger := logging.New(level)
	if err != nil {
		logger.Warn("falling back to info level", "error", err)
	}
	return logger
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
