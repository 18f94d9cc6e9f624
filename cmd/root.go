package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storefront-tools/devflow-cli/internal/config"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "devflow",
	Short:   "Developer workflow helpers for Notion tickets and Shopify staging URLs",
	Long:    `Command-line helpers for day-to-day storefront development: update a Notion ticket (status, PR link, notes) in a single call, and resolve a theme preview URL for the current branch.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.devflow.yaml)")
}

// loadConfig loads configuration. Commands that need it call this.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg
	return nil
}
