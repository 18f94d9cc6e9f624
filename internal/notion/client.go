// Package notion is a minimal Notion REST API client covering the ticket
// update workflow: find a page by ticket id, patch its properties, and
// append note blocks.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/storefront-tools/devflow-cli/internal/config"
	"github.com/storefront-tools/devflow-cli/internal/note"
	"github.com/storefront-tools/devflow-cli/internal/ticket"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"

	// idProperty is the rich-text database property holding ticket ids.
	idProperty = "ID"
	// prProperty is the url database property holding the PR link.
	prProperty = "PR"
)

// Client is a Notion REST API client scoped to one ticket database.
type Client struct {
	baseURL        string
	token          string
	databaseID     string
	statusProperty string
	httpClient     *http.Client
}

// NewClient creates a new Notion client from the given config.
func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL:        defaultBaseURL,
		token:          cfg.Notion.Token,
		databaseID:     cfg.Notion.DatabaseID,
		statusProperty: cfg.Notion.StatusProperty,
		httpClient:     &http.Client{Timeout: cfg.Timeout()},
	}
}

// FindPage locates the database page whose ID property equals ticketID.
func (c *Client) FindPage(ctx context.Context, ticketID string) (*Page, error) {
	payload := queryPayload{
		Filter: queryFilter{
			Property: idProperty,
			RichText: richTextEquals{Equals: ticketID},
		},
		PageSize: 1,
	}

	var result queryResponse
	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, c.databaseID)
	if err := c.do(ctx, http.MethodPost, url, payload, &result); err != nil {
		return nil, err
	}

	if len(result.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", ticket.ErrNotFound, ticketID)
	}

	return &result.Results[0], nil
}

// UpdatePage patches the page's properties.
func (c *Client) UpdatePage(ctx context.Context, pageID string, update PageUpdate) error {
	url := fmt.Sprintf("%s/v1/pages/%s", c.baseURL, pageID)
	return c.do(ctx, http.MethodPatch, url, update, nil)
}

// AppendBlocks appends note blocks to the page body.
func (c *Client) AppendBlocks(ctx context.Context, pageID string, blocks []Block) error {
	url := fmt.Sprintf("%s/v1/blocks/%s/children", c.baseURL, pageID)
	return c.do(ctx, http.MethodPatch, url, appendPayload{Children: blocks}, nil)
}

// ApplyUpdate implements ticket.Service: one page lookup, then the property
// patch and note append the request calls for.
func (c *Client) ApplyUpdate(ctx context.Context, req ticket.Request) (*ticket.Ack, error) {
	page, err := c.FindPage(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.HasFieldChanges() {
		update := PageUpdate{Properties: map[string]PropertyValue{}}
		if req.Status != "" {
			update.Properties[c.statusProperty] = PropertyValue{Status: &StatusValue{Name: req.Status}}
		}
		if req.PRURL != "" {
			update.Properties[prProperty] = PropertyValue{URL: req.PRURL}
		}
		if err := c.UpdatePage(ctx, page.ID, update); err != nil {
			return nil, fmt.Errorf("updating properties of %s: %w", req.ID, err)
		}
	}

	if len(req.Note) > 0 {
		if err := c.AppendBlocks(ctx, page.ID, BlocksFromNote(req.Note, req.Emoji)); err != nil {
			return nil, fmt.Errorf("appending note to %s: %w", req.ID, err)
		}
	}

	return &ticket.Ack{
		TicketID: req.ID,
		URL:      page.URL,
		Status:   req.Status,
		PRURL:    req.PRURL,
	}, nil
}

// BlocksFromNote converts classified note blocks into Notion block payloads.
// A non-empty emoji becomes a leading paragraph. Blank separators are
// dropped; Notion renders block boundaries on its own.
func BlocksFromNote(blocks []note.Block, emoji string) []Block {
	out := make([]Block, 0, len(blocks)+1)
	if emoji != "" && len(blocks) > 0 {
		out = append(out, Block{
			Object:    "block",
			Type:      "paragraph",
			Paragraph: &BlockContent{RichText: []RichText{{Type: "text", Text: TextSpan{Content: emoji + " Update"}}}},
		})
	}
	for _, b := range blocks {
		content := &BlockContent{RichText: []RichText{{Type: "text", Text: TextSpan{Content: b.Text}}}}
		switch b.Kind {
		case note.Heading:
			out = append(out, Block{Object: "block", Type: "heading_2", Heading2: content})
		case note.Bullet:
			out = append(out, Block{Object: "block", Type: "bulleted_list_item", Bulleted: content})
		case note.Paragraph:
			out = append(out, Block{Object: "block", Type: "paragraph", Paragraph: content})
		case note.Blank:
			// separator only
		}
	}
	return out
}

// do executes one JSON request and decodes the response into out (when
// non-nil). Transport failures and 5xx map to ErrServiceUnavailable, 404 to
// ErrNotFound.
func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ticket.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: Notion API returned 404: %s", ticket.ErrNotFound, excerpt(body))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode >= 500:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: Notion API returned %d: %s", ticket.ErrServiceUnavailable, resp.StatusCode, excerpt(body))
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Notion API returned %d: %s", resp.StatusCode, excerpt(body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// excerpt trims an error body to a single readable line.
func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
