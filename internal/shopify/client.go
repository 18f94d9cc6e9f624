// Package shopify is a minimal Shopify Admin API client covering theme
// listing for staging-url resolution.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiVersion = "2024-01"

// Theme is one storefront theme from GET /admin/api/{v}/themes.json.
type Theme struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // "main", "development", "unpublished", ...
}

// themesResponse wraps the themes array.
type themesResponse struct {
	Themes []Theme `json:"themes"`
}

// Client is a Shopify Admin API client.
type Client struct {
	accessToken string
	httpClient  *http.Client

	// baseURL overrides the store-derived https endpoint in tests.
	baseURL string
}

// NewClient creates a new Shopify client. The access token may be empty;
// calls will then fail and the caller degrades to a live-site URL.
func NewClient(accessToken string, timeout time.Duration) *Client {
	return &Client{
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// ListThemes fetches all themes of the given store.
func (c *Client) ListThemes(ctx context.Context, store string) ([]Theme, error) {
	if c.accessToken == "" {
		return nil, fmt.Errorf("no Shopify access token configured")
	}

	base := c.baseURL
	if base == "" {
		base = "https://" + strings.TrimSuffix(store, "/")
	}
	url := fmt.Sprintf("%s/admin/api/%s/themes.json", base, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Shopify API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result themesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return result.Themes, nil
}
