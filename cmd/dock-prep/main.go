// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dock-prep CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dock-prep CLI.
var rootCmd = &cobra.Command{
	Use:   "dock-prep",
	Short: "Prepare molecular structures for docking via external tools",
	Long: `dock-prep orchestrates external molecular-modeling programs (MGLTools,
OpenBabel, MolProbity, and PDB2PQR) to convert structure files between
formats on the way to a docking-ready receptor.

The run subcommand performs one conversion; fetch downloads structures from
the RCSB PDB; history shows past invocations from the run journal. Tool
installation paths come from a flat JSON or YAML file passed with
--tool-config.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dock-prep.yaml or ~/.config/dock-prep/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dock-prep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dock-prep"))
		}
	}

	viper.SetEnvPrefix("DOCK_PREP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
