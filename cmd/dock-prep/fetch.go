// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dock-prep/internal/fetch"
	"github.com/pdiddy/dock-prep/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <pdb-id>...",
	Short: "Download structures from the RCSB PDB",
	Long: `Fetch downloads one or more entries from the RCSB PDB into
<structures-dir>/raw/, writing a YAML metadata sidecar per entry. Existing
files are not re-downloaded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("structures-dir")
		delay, _ := cmd.Flags().GetDuration("delay")
		timeout, _ := cmd.Flags().GetDuration("http-timeout")

		cfg := types.FetchConfig{
			StructuresDir: dir,
			UserAgent:     "dock-prep/" + version,
			Timeout:       timeout,
			DownloadDelay: delay,
		}
		client := &http.Client{Timeout: cfg.Timeout}

		result := fetch.FetchBatch(cmd.Context(), client, args, cfg, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d of %d downloads failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("structures-dir", "structures", "base directory for structures")
	fetchCmd.Flags().Duration("delay", time.Second, "delay between consecutive downloads")
	fetchCmd.Flags().Duration("http-timeout", 60*time.Second, "HTTP request timeout")

	rootCmd.AddCommand(fetchCmd)
}
