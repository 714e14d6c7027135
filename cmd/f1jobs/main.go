package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"f1jobs/internal/app"
	"f1jobs/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	outputPath string
	onlyTeams  []string
)

var rootCmd = &cobra.Command{
	Use:           "f1jobs",
	Short:         "Scrapes F1 team career sites into output/F1_Jobs.xlsx.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		_, err = app.Run(ctx, app.Options{Config: cfg, Out: cmd.OutOrStdout(), Teams: onlyTeams})
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML file overlaid on the built-in team roster and settings")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "workbook path (default output/F1_Jobs.xlsx)")
	rootCmd.Flags().StringSliceVar(&onlyTeams, "team", nil, "only scrape these team ids (repeatable)")
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		c, err := config.Load(cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("config load failed (%s): %w", cfgPath, err)
		}
		cfg = c
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		return cfg, config.Validate(cfg)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
