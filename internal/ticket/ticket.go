// Package ticket builds and validates ticket update requests.
package ticket

import (
	"context"
	"errors"

	"github.com/storefront-tools/devflow-cli/internal/note"
)

var (
	// ErrMissingTicketID is returned when no ticket id was supplied.
	ErrMissingTicketID = errors.New("ticket id is required")
	// ErrNoAction is returned when no action flag accompanies the id.
	ErrNoAction = errors.New("no action specified: pass at least one of --status, --pr-url, --notes")
	// ErrNotFound is returned when the service does not know the ticket id.
	ErrNotFound = errors.New("ticket not found")
	// ErrServiceUnavailable is returned on transport failures and timeouts.
	ErrServiceUnavailable = errors.New("ticket service unavailable")
)

// Request aggregates all actions of a single update invocation. It is built
// once, immutable after construction, and consumed by exactly one
// Service.ApplyUpdate call.
type Request struct {
	ID     string
	Status string
	PRURL  string
	Note   []note.Block
	// Emoji is the sniffed note category, applied as a prefix when the
	// note is rendered for the service. Best-effort.
	Emoji string
}

// Ack echoes the ticket's visible fields after a successful update.
type Ack struct {
	TicketID string
	URL      string
	Status   string
	PRURL    string
}

// Service applies one update atomically to a single ticket record.
type Service interface {
	ApplyUpdate(ctx context.Context, req Request) (*Ack, error)
}

// NewRequest merges the command-line actions into one Request. Note text is
// classified into blocks; a category emoji is chosen by keyword sniffing.
func NewRequest(id, status, prURL, noteText string, rules []note.EmojiRule) (Request, error) {
	if id == "" {
		return Request{}, ErrMissingTicketID
	}
	if status == "" && prURL == "" && noteText == "" {
		return Request{}, ErrNoAction
	}

	req := Request{
		ID:     id,
		Status: status,
		PRURL:  prURL,
	}

	if noteText != "" {
		req.Note = note.Parse(noteText)
		req.Emoji = note.SniffEmoji(noteText, rules)
	}

	return req, nil
}

// HasFieldChanges reports whether the request carries status or PR changes
// (anything beyond a note append).
func (r Request) HasFieldChanges() bool {
	return r.Status != "" || r.PRURL != ""
}
