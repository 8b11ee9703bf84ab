package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dpcl"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dpcl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dpcl version %s\n", strings.TrimSpace(dpcl.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
