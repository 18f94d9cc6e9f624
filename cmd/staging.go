package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/storefront-tools/devflow-cli/internal/gitctx"
	"github.com/storefront-tools/devflow-cli/internal/shopify"
	"github.com/storefront-tools/devflow-cli/internal/staging"
)

var (
	stagingThemeID string
	stagingBranch  string
	stagingStore   string
	stagingPage    string
	stagingFormat  string
	stagingCopy    bool
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

var stagingCmd = &cobra.Command{
	Use:   "staging-url",
	Short: "Resolve a theme preview URL for the current branch",
	Long: `Resolves the store from flags, theme config files, or the directory name,
and the theme id from flags, branch-scoped git config, or the store's theme
list. Without a theme id the URL points at the live theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := staging.ParseFormat(stagingFormat)
		if err != nil {
			return err
		}

		if err := loadConfig(); err != nil {
			return err
		}

		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		resolver := &staging.Resolver{
			Dir:           dir,
			FallbackStore: appConfig.Staging.FallbackStore,
			Themes:        shopify.NewClient(appConfig.Shopify.AccessToken, appConfig.Timeout()),
			CurrentBranch: gitctx.CurrentBranch,
			BranchThemeID: gitctx.ThemeID,
		}

		result, err := resolver.Resolve(context.Background(), staging.Query{
			Store:    stagingStore,
			ThemeID:  stagingThemeID,
			Branch:   stagingBranch,
			PagePath: stagingPage,
		})
		if err != nil {
			return err
		}

		rendered, err := staging.Render(result, format)
		if err != nil {
			return err
		}

		fmt.Println(rendered)

		if stagingCopy {
			// Best-effort: a missing clipboard never fails the command.
			if err := clipboardWriteAll(result.URL); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not copy to clipboard: %v\n", err)
			} else {
				fmt.Fprintln(os.Stderr, "Copied URL to clipboard")
			}
		}

		return nil
	},
}

func init() {
	stagingCmd.Flags().StringVarP(&stagingThemeID, "theme-id", "t", "", "theme id to preview")
	stagingCmd.Flags().StringVarP(&stagingBranch, "branch", "b", "", "branch name for theme id lookup (default: current branch)")
	stagingCmd.Flags().StringVarP(&stagingStore, "store", "s", "", "store hostname (e.g. foo.myshopify.com)")
	stagingCmd.Flags().StringVarP(&stagingPage, "page", "p", "/", "page path, must start with /")
	stagingCmd.Flags().StringVarP(&stagingFormat, "format", "f", "url", "output format: url, markdown, json, notion")
	stagingCmd.Flags().BoolVarP(&stagingCopy, "copy", "c", false, "copy the URL to the clipboard")
	rootCmd.AddCommand(stagingCmd)
}
