// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dock-prep/internal/execute"
	"github.com/pdiddy/dock-prep/internal/journal"
	"github.com/pdiddy/dock-prep/internal/prep"
	"github.com/pdiddy/dock-prep/internal/toolcfg"
	"github.com/pdiddy/dock-prep/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run <input> <output>",
	Short: "Convert a structure file with one external tool",
	Long: `Run invokes a single external tool to convert the input structure into the
output path. The tool is selected with --tool; MGLTools and MolProbity need
installation paths from the --tool-config file, OpenBabel and PDB2PQR only
need their binaries on PATH.

A PQR input given to MGLTools is first converted to PDB through OpenBabel,
since prepare_receptor4.py cannot parse PQR directly; the intermediate file
is removed afterwards.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolName, _ := cmd.Flags().GetString("tool")
		pH, _ := cmd.Flags().GetFloat64("ph")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}

		p := prep.New(cfg, execute.New(os.Stdout), os.Stdout)

		if dir := stringSetting(cmd, "journal-dir", "journal_dir"); dir != "" {
			store, err := journal.NewStore(dir)
			if err != nil {
				// The journal is observational; a broken journal must not
				// block conversions.
				fmt.Fprintf(os.Stderr, "warning: journal unavailable: %v\n", err)
			} else {
				defer store.Close()
				p = p.WithJournal(store)
			}
		}

		ok, err := p.Run(cmd.Context(), types.Request{
			Tool:       types.Tool(toolName),
			InputPath:  args[0],
			OutputPath: args[1],
			PH:         pH,
			Timeout:    timeout,
			Verbose:    verbose,
		})
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("conversion did not produce %s", args[1])
		}
		return nil
	},
}

// loadToolConfig assembles the tool-paths configuration: the --tool-config
// file first, then --config-dir per-key files layered on top.
func loadToolConfig(cmd *cobra.Command) (toolcfg.Config, error) {
	cfg := toolcfg.Config{}

	if path := stringSetting(cmd, "tool-config", "tool_config"); path != "" {
		loaded, err := toolcfg.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if dir := stringSetting(cmd, "config-dir", "config_dir"); dir != "" {
		overrides, err := toolcfg.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(overrides)
	}

	return cfg, nil
}

// stringSetting reads a flag, falling back to the viper key when the flag
// was not set on the command line.
func stringSetting(cmd *cobra.Command, flag, viperKey string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(viperKey)
}

func init() {
	runCmd.Flags().String("tool", "", "tool to run: MGLTools, OpenBabel, MolProbity, or PDB2PQR")
	runCmd.Flags().Float64("ph", types.DefaultPH, "pH for protonation-state assignment (PDB2PQR only)")
	runCmd.Flags().Duration("timeout", 0, "wall-clock budget override (default 300s, 1800s for PDB2PQR)")
	runCmd.Flags().String("tool-config", "", "flat JSON or YAML file with tool installation paths")
	runCmd.Flags().String("config-dir", "", "directory of per-key override files")
	runCmd.Flags().String("journal-dir", "", "directory for the run journal database")
	runCmd.Flags().BoolP("verbose", "v", false, "print the constructed command and cleanup steps")
	_ = runCmd.MarkFlagRequired("tool")

	rootCmd.AddCommand(runCmd)
}
