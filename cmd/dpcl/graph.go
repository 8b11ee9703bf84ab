package main

import (
	"fmt"

	"github.com/aretw0/dpcl/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the pipeline graph visualization",
	Long:  `Loads the manifest and outputs a Mermaid diagram (graph TD) of every task and artifact.`,
	Run: func(cmd *cobra.Command, args []string) {
		project, _ := openProject(resolveConfig(cmd))

		var overlay *graph.GraphOverlay
		if focus, _ := cmd.Flags().GetString("focus"); focus != "" {
			overlay = &graph.GraphOverlay{FocusTask: focus}
		}

		// Generate and print Mermaid graph
		fmt.Print(graph.GenerateMermaid(project.Pipeline, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("focus", "", "Highlight one task and its artifacts")
}
