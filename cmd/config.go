package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/storefront-tools/devflow-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure Notion and Shopify credentials",
	Long:  `Interactively set up the Notion integration token, ticket database id, and Shopify access token. Settings are saved to ~/.devflow.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		// Load existing config for defaults
		existing, _ := config.Load(cfgFile)

		// Notion token (masked input)
		fmt.Print("Notion integration token (input hidden): ")
		tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println() // newline after hidden input
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		notionToken := strings.TrimSpace(string(tokenBytes))
		if notionToken == "" {
			notionToken = existing.Notion.Token
		}

		// Database id
		defaultDB := existing.Notion.DatabaseID
		if defaultDB != "" {
			fmt.Printf("Notion ticket database id [%s]: ", defaultDB)
		} else {
			fmt.Print("Notion ticket database id: ")
		}
		databaseID, _ := reader.ReadString('\n')
		databaseID = strings.TrimSpace(databaseID)
		if databaseID == "" {
			databaseID = defaultDB
		}

		// Shopify token (masked input, optional)
		fmt.Print("Shopify access token (optional, input hidden): ")
		shopifyBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		shopifyToken := strings.TrimSpace(string(shopifyBytes))
		if shopifyToken == "" {
			shopifyToken = existing.Shopify.AccessToken
		}

		// Fallback store (optional)
		defaultStore := existing.Staging.FallbackStore
		if defaultStore != "" {
			fmt.Printf("Fallback store [%s]: ", defaultStore)
		} else {
			fmt.Print("Fallback store (optional, e.g. foo.myshopify.com): ")
		}
		fallbackStore, _ := reader.ReadString('\n')
		fallbackStore = strings.TrimSpace(fallbackStore)
		if fallbackStore == "" {
			fallbackStore = defaultStore
		}

		cfg := existing
		cfg.Notion.Token = notionToken
		cfg.Notion.DatabaseID = databaseID
		cfg.Shopify.AccessToken = shopifyToken
		cfg.Staging.FallbackStore = fallbackStore

		if err := cfg.ValidateNotion(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if err := config.Save(cfg, path); err != nil {
			return err
		}

		fmt.Printf("Configuration saved to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
