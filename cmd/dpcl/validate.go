package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dpcl/pkg/manifest"
	"github.com/aretw0/dpcl/pkg/pipeline"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the manifest for consistency",
	Long:  `Decodes the manifest and builds the pipeline, reporting unnamed tasks, duplicate names and unknown keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)

		m, err := manifest.Load(cfg.File)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		p, err := m.Pipeline(pipeline.WithLogger(cfg.Logger()))
		if err != nil {
			fmt.Printf("Validation failed:\n%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Pipeline is valid! ✅ (%d tasks, %d artifacts)\n", p.TaskCount(), p.ArtifactCount())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
