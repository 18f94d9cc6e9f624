// Package note converts markdown note text into a flat sequence of typed
// blocks suitable for appending to a ticket page. The conversion is
// deliberately lossy: headings, bullets, and paragraphs only, no nested
// lists and no inline formatting.
package note

import "strings"

// Kind identifies a block type.
type Kind int

const (
	// Paragraph is the fallback for any unrecognized line.
	Paragraph Kind = iota
	// Heading is a "## "-prefixed line.
	Heading
	// Bullet is a "- " or "* "-prefixed line.
	Bullet
	// Blank separates surrounding blocks.
	Blank
)

// Block is one classified line of note text.
type Block struct {
	Kind  Kind
	Level int // heading level, 0 otherwise
	Text  string
}

// Parse classifies each line of the note into exactly one block. Every
// input line maps to a block; unrecognized syntax falls back to Paragraph.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			blocks = append(blocks, Block{Kind: Blank})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{
				Kind:  Heading,
				Level: 2,
				Text:  strings.TrimSpace(strings.TrimPrefix(line, "## ")),
			})
		case strings.HasPrefix(line, "- "):
			blocks = append(blocks, Block{Kind: Bullet, Text: strings.TrimSpace(line[2:])})
		case strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Kind: Bullet, Text: strings.TrimSpace(line[2:])})
		default:
			blocks = append(blocks, Block{Kind: Paragraph, Text: line})
		}
	}

	return blocks
}

// EmojiRule maps note keywords to a category emoji.
type EmojiRule struct {
	Keywords []string `yaml:"keywords" mapstructure:"keywords"`
	Emoji    string   `yaml:"emoji"    mapstructure:"emoji"`
}

// DefaultEmojiRules is the built-in keyword-to-emoji mapping, used when the
// config defines none.
func DefaultEmojiRules() []EmojiRule {
	return []EmojiRule{
		{Keywords: []string{"fix", "bug"}, Emoji: "🐛"},
		{Keywords: []string{"feature", "add"}, Emoji: "✨"},
	}
}

// DefaultEmoji is used when no rule matches.
const DefaultEmoji = "📝"

// SniffEmoji picks a category emoji for the note by case-insensitive keyword
// containment. Rules are checked in order and the first hit wins. This is a
// best-effort heuristic, not a guarantee.
func SniffEmoji(text string, rules []EmojiRule) string {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Emoji
			}
		}
	}
	return DefaultEmoji
}
