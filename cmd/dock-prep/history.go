// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dock-prep/internal/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past tool invocations from the run journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := stringSetting(cmd, "journal-dir", "journal_dir")
		if dir == "" {
			return fmt.Errorf("no journal directory: pass --journal-dir or set journal_dir in the config")
		}
		limit, _ := cmd.Flags().GetInt("limit")
		format, _ := cmd.Flags().GetString("export")
		outPath, _ := cmd.Flags().GetString("out")

		store, err := journal.NewStore(dir)
		if err != nil {
			return err
		}
		defer store.Close()

		switch format {
		case "yaml":
			if err := store.ExportYAML(cmd.Context(), outPath); err != nil {
				return err
			}
			fmt.Printf("exported journal to %s\n", outPath)
			return nil
		case "json":
			if err := store.ExportJSON(cmd.Context(), outPath); err != nil {
				return err
			}
			fmt.Printf("exported journal to %s\n", outPath)
			return nil
		case "":
		default:
			return fmt.Errorf("unknown export format %q: want yaml or json", format)
		}

		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("journal is empty")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tTOOL\tSTATUS\tEXIT\tDURATION\tSIZE\tOUTPUT")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%s\n",
				r.StartedAt.Local().Format(time.DateTime), r.Tool, r.Status,
				r.ExitCode, r.Duration.Round(time.Millisecond), r.OutputSize, r.OutputPath)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().String("journal-dir", "", "directory of the run journal database")
	historyCmd.Flags().Int("limit", 20, "maximum number of rows to show")
	historyCmd.Flags().String("export", "", "write the full journal instead: yaml or json")
	historyCmd.Flags().String("out", "journal-export.yaml", "output path for --export")

	rootCmd.AddCommand(historyCmd)
}
