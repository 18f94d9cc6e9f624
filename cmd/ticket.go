package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storefront-tools/devflow-cli/internal/notion"
	"github.com/storefront-tools/devflow-cli/internal/ticket"
)

var (
	ticketStatus  string
	ticketPRURL   string
	ticketNotes   string
	ticketSummary string
	ticketDryRun  bool
)

var ticketCmd = &cobra.Command{
	Use:   "ticket <ticket-id>",
	Short: "Update a Notion ticket in a single call",
	Long: `Applies any combination of status change, PR-link attach, and note append
to one ticket. At least one action flag is required. Notes are markdown and
are converted to Notion blocks (headings, bullets, paragraphs only).

Use --dry-run to preview the Notion payload without applying.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noteText := ticketNotes
		if noteText == "" {
			noteText = ticketSummary
		}

		if err := loadConfig(); err != nil {
			return err
		}

		req, err := ticket.NewRequest(args[0], ticketStatus, ticketPRURL, noteText, appConfig.EmojiRules)
		if err != nil {
			return err
		}

		if ticketDryRun {
			fmt.Fprintf(os.Stderr, "Dry run: would update %s\n\n", req.ID)
			preview := struct {
				Status   string         `json:"status,omitempty"`
				PRURL    string         `json:"pr_url,omitempty"`
				Children []notion.Block `json:"children,omitempty"`
			}{req.Status, req.PRURL, notion.BlocksFromNote(req.Note, req.Emoji)}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(preview); err != nil {
				return fmt.Errorf("encoding preview: %w", err)
			}
			return nil
		}

		if err := appConfig.ValidateNotion(); err != nil {
			return fmt.Errorf("invalid config: %w\nRun 'devflow config' to set up credentials", err)
		}

		client := notion.NewClient(appConfig)
		ack, err := client.ApplyUpdate(context.Background(), req)
		if err != nil {
			return fmt.Errorf("updating %s: %w", req.ID, err)
		}

		fmt.Fprintf(os.Stderr, "Updated %s", ack.TicketID)
		if ack.Status != "" {
			fmt.Fprintf(os.Stderr, " (status: %s)", ack.Status)
		}
		if ack.PRURL != "" {
			fmt.Fprintf(os.Stderr, " (pr: %s)", ack.PRURL)
		}
		fmt.Fprintln(os.Stderr)
		if ack.URL != "" {
			fmt.Println(ack.URL)
		}
		return nil
	},
}

func init() {
	ticketCmd.Flags().StringVarP(&ticketStatus, "status", "s", "", "new workflow status label")
	ticketCmd.Flags().StringVarP(&ticketPRURL, "pr-url", "p", "", "pull request URL to attach")
	ticketCmd.Flags().StringVarP(&ticketNotes, "notes", "n", "", "markdown note to append")
	ticketCmd.Flags().StringVar(&ticketSummary, "summary", "", "synonym for --notes")
	ticketCmd.Flags().BoolVar(&ticketDryRun, "dry-run", false, "preview the Notion payload without applying")
	rootCmd.AddCommand(ticketCmd)
}
