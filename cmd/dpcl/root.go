package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/dpcl"
	"github.com/aretw0/dpcl/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dpcl",
	Short: "DPCL models build pipelines as a graph of tasks and artifacts",
	Long: `DPCL reads a task manifest (YAML or JSON) and builds the dependency graph between
tasks and the artifacts they consume and produce. It inspects, exports and serves that graph.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", config.DefaultFile, "Task manifest to load (env DPCL_FILE)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error (env DPCL_LOG_LEVEL)")
}

// resolveConfig merges .env and the environment with any flags set on the command line.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if cmd.Flags().Changed("file") {
		cfg.File, _ = cmd.Flags().GetString("file")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = f.Value.String()
	}
	return cfg
}

// openProject loads the configured manifest or exits.
func openProject(cfg config.Config) (*dpcl.Project, *slog.Logger) {
	logger := cfg.Logger()

	project, err := dpcl.Open(cfg.File, dpcl.WithLogger(logger))
	if err != nil {
		fmt.Printf("Error loading pipeline: %v\n", err)
		os.Exit(1)
	}
	return project, logger
}
