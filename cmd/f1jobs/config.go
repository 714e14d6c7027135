package main

import (
	"fmt"
	"strings"

	"f1jobs/internal/config"
	"f1jobs/internal/scrape/extract"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or write the run configuration.",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path/to/f1jobs.yml>",
	Short: "Writes the built-in configuration to a YAML file for editing.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveAtomic(args[0], config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the configuration (built-in, or --config) and lists extractor keys.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ok: %d teams, output=%s\n", len(cfg.Teams), cfg.Output.Path)
		fmt.Fprintf(out, "extractors: %s\n", strings.Join(extract.Keys(), ", "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configCheckCmd)
	rootCmd.AddCommand(configCmd)
}
