package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dpcl/pkg/domain"
	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps <task>",
	Short: "List what a task depends on and produces",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		project, _ := openProject(resolveConfig(cmd))
		name := args[0]

		if _, ok := project.Pipeline.GetTask(name); !ok {
			fmt.Printf("Task %q not found\n", name)
			os.Exit(1)
		}

		fmt.Printf("%s\n", name)
		printArtifacts("needs", project.Pipeline.TaskDependencies(name))
		printArtifacts("makes", project.Pipeline.TaskOutputs(name))
	},
}

func printArtifacts(label string, artifacts []domain.Artifact) {
	if len(artifacts) == 0 {
		fmt.Printf("  %s: (none)\n", label)
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, a := range artifacts {
		fmt.Printf("    - %s\n", a.Path)
	}
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
