package staging

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format is an output encoding for a resolved preview.
type Format string

const (
	FormatURL      Format = "url"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatNotion   Format = "notion"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatURL, FormatMarkdown, FormatJSON, FormatNotion:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w (got %q)", ErrInvalidFormat, s)
}

// jsonResult is the json-format rendering. Absent fields serialize as empty
// strings, never null.
type jsonResult struct {
	Store      string `json:"store"`
	ThemeID    string `json:"theme_id"`
	Branch     string `json:"branch"`
	Page       string `json:"page"`
	PreviewURL string `json:"preview_url"`
}

// Render encodes the result in the given format.
func Render(res *Result, format Format) (string, error) {
	switch format {
	case FormatURL:
		return res.URL, nil

	case FormatMarkdown:
		return fmt.Sprintf("[Preview: %s](%s)", res.Store, res.URL), nil

	case FormatJSON:
		data, err := json.MarshalIndent(jsonResult{
			Store:      res.Store,
			ThemeID:    res.ThemeID,
			Branch:     res.Branch,
			Page:       res.PagePath,
			PreviewURL: res.URL,
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding result: %w", err)
		}
		return string(data), nil

	case FormatNotion:
		themeID := res.ThemeID
		if themeID == "" {
			themeID = "(live)"
		}
		branch := res.Branch
		if branch == "" {
			branch = "(unknown)"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "🔗 [Preview: %s](%s)\n", res.Store, res.URL)
		b.WriteString("\n")
		fmt.Fprintf(&b, "Store: %s\n", res.Store)
		fmt.Fprintf(&b, "Theme ID: %s\n", themeID)
		fmt.Fprintf(&b, "Branch: %s", branch)
		return b.String(), nil
	}

	return "", fmt.Errorf("%w (got %q)", ErrInvalidFormat, format)
}
