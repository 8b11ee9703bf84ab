package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dpcl/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the pipeline",
	Long:  `Loads the manifest and prints the tasks with their dependencies and outputs, plus the source and sink artifacts.`,
	Run: func(cmd *cobra.Command, args []string) {
		project, logger := openProject(resolveConfig(cmd))

		report := tui.Report(project.Name, project.Pipeline)

		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			fmt.Print(report)
			return
		}

		tui.PrintBanner(os.Stdout)
		rendered, err := tui.NewRenderer()(report)
		if err != nil {
			logger.Warn("markdown rendering failed, printing raw report", "error", err)
			rendered = report
		}
		fmt.Print(rendered)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("raw", false, "Print the markdown report without terminal styling")
}
