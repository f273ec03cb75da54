// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dock-prep/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the supported external tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOOL\tDEFAULT TIMEOUT")
		for _, name := range tools.Names() {
			tool, err := tools.ForName(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", tool.Name(), tool.DefaultTimeout())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
