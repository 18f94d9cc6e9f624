package note

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "empty input yields no blocks",
			input: "",
			want:  nil,
		},
		{
			name:  "heading",
			input: "## Done",
			want:  []Block{{Kind: Heading, Level: 2, Text: "Done"}},
		},
		{
			name:  "dash bullet",
			input: "- fixed bug",
			want:  []Block{{Kind: Bullet, Text: "fixed bug"}},
		},
		{
			name:  "star bullet",
			input: "* fixed bug",
			want:  []Block{{Kind: Bullet, Text: "fixed bug"}},
		},
		{
			name:  "plain paragraph",
			input: "just some text",
			want:  []Block{{Kind: Paragraph, Text: "just some text"}},
		},
		{
			name:  "blank lines preserved as separators",
			input: "a\n\nb",
			want: []Block{
				{Kind: Paragraph, Text: "a"},
				{Kind: Blank},
				{Kind: Paragraph, Text: "b"},
			},
		},
		{
			name:  "mixed document",
			input: "## Done\n- fixed bug\n\nfooter",
			want: []Block{
				{Kind: Heading, Level: 2, Text: "Done"},
				{Kind: Bullet, Text: "fixed bug"},
				{Kind: Blank},
				{Kind: Paragraph, Text: "footer"},
			},
		},
		{
			name:  "h3 is not special, falls back to paragraph",
			input: "### Deep",
			want:  []Block{{Kind: Paragraph, Text: "### Deep"}},
		},
		{
			name:  "nested bullet is flattened to paragraph by design",
			input: "  - nested",
			want:  []Block{{Kind: Paragraph, Text: "  - nested"}},
		},
		{
			name:  "inline emphasis is not parsed",
			input: "this is **bold** text",
			want:  []Block{{Kind: Paragraph, Text: "this is **bold** text"}},
		},
		{
			name:  "bullet marker without space is a paragraph",
			input: "-no space",
			want:  []Block{{Kind: Paragraph, Text: "-no space"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Every non-blank line maps to exactly one non-blank block, and conversion
// is deterministic.
func TestParseIsTotal(t *testing.T) {
	input := "## a\nplain\n- b\n\n* c\nweird ``` stuff | here"

	first := Parse(input)
	second := Parse(input)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Parse() is not deterministic (-first +second):\n%s", diff)
	}

	assert.Len(t, first, 6, "one block per input line")
}

func TestSniffEmoji(t *testing.T) {
	rules := DefaultEmojiRules()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"bug keyword", "Fixed a nasty bug in checkout", "🐛"},
		{"fix keyword case-insensitive", "FIX the cart drawer", "🐛"},
		{"feature keyword", "New feature: quick view", "✨"},
		{"first rule wins over later rules", "fix the new feature", "🐛"},
		{"no match falls back to default", "refactored templates", DefaultEmoji},
		{"empty text falls back to default", "", DefaultEmoji},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffEmoji(tt.text, rules))
		})
	}
}

func TestSniffEmojiCustomRules(t *testing.T) {
	rules := []EmojiRule{
		{Keywords: []string{"deploy"}, Emoji: "🚀"},
	}

	assert.Equal(t, "🚀", SniffEmoji("ready to deploy", rules))
	assert.Equal(t, DefaultEmoji, SniffEmoji("ready to ship", rules))
	assert.Equal(t, DefaultEmoji, SniffEmoji("anything", nil))
}
