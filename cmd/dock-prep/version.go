package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of dock-prep",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dock-prep %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
