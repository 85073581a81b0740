package deckset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesExtractor_ExtractNotes(t *testing.T) {
	extractor := NewNotesExtractor()

	tests := []struct {
		name          string
		content       string
		expectedMain  string
		expectedNotes string
	}{
		{
			name:          "no notes",
			content:       "# Title\n\nSome content",
			expectedMain:  "# Title\n\nSome content",
			expectedNotes: "",
		},
		{
			name:          "single note line",
			content:       "# Title\n^ Remember to smile",
			expectedMain:  "# Title",
			expectedNotes: "Remember to smile",
		},
		{
			name:          "multiple note lines join in order",
			content:       "# Title\n^ first point\nvisible\n^ second point",
			expectedMain:  "# Title\nvisible",
			expectedNotes: "first point\nsecond point",
		},
		{
			name:          "indented caret lines count",
			content:       "body\n   ^ indented note",
			expectedMain:  "body",
			expectedNotes: "indented note",
		},
		{
			name:          "only one space after caret is eaten",
			content:       "body\n^  double spaced",
			expectedMain:  "body",
			expectedNotes: " double spaced",
		},
		{
			name:          "caret without space",
			content:       "body\n^tight",
			expectedMain:  "body",
			expectedNotes: "tight",
		},
		{
			name:          "caret mid-line is content",
			content:       "a ^ b",
			expectedMain:  "a ^ b",
			expectedNotes: "",
		},
		{
			name:          "a note never swallows following content",
			content:       "intro\n^ only note\ntail stays",
			expectedMain:  "intro\ntail stays",
			expectedNotes: "only note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mainContent, notes := extractor.ExtractNotes(tt.content)
			assert.Equal(t, tt.expectedMain, mainContent)
			assert.Equal(t, tt.expectedNotes, notes)
		})
	}
}

func TestNotesExtractor_ConvertNotesToHTML(t *testing.T) {
	extractor := NewNotesExtractor()

	t.Run("empty notes yield empty HTML", func(t *testing.T) {
		assert.Empty(t, extractor.ConvertNotesToHTML(""))
		assert.Empty(t, extractor.ConvertNotesToHTML("   \n  "))
	})

	t.Run("markdown is converted", func(t *testing.T) {
		html := extractor.ConvertNotesToHTML("this is **bold**")
		assert.Contains(t, html, "<strong>bold</strong>")
	})

	t.Run("plain text becomes a paragraph", func(t *testing.T) {
		html := extractor.ConvertNotesToHTML("just a note")
		assert.Contains(t, html, "<p>just a note</p>")
	})
}

func TestExtractFootnotes(t *testing.T) {
	t.Run("definitions are removed and collected", func(t *testing.T) {
		content := "Claim[^1] and another[^src]\n\n[^1]: First source\n[^src]: Second source"

		cleaned, defs, diags := ExtractFootnotes(content)
		assert.Empty(t, diags)
		assert.Equal(t, map[string]string{
			"1":   "First source",
			"src": "Second source",
		}, defs)

		// references stay in the visible content, definitions do not
		assert.Contains(t, cleaned, "[^1]")
		assert.NotContains(t, cleaned, "[^1]:")
		assert.NotContains(t, cleaned, "First source")
	})

	t.Run("duplicate definition keeps the first", func(t *testing.T) {
		content := "[^a]: one\n[^a]: two"
		_, defs, _ := ExtractFootnotes(content)
		assert.Equal(t, "one", defs["a"])
	})

	t.Run("undefined reference is a diagnostic, not an error", func(t *testing.T) {
		cleaned, defs, diags := ExtractFootnotes("Claim[^ghost] here")
		assert.Empty(t, defs)
		assert.Contains(t, cleaned, "[^ghost]")
		require.Len(t, diags, 1)
		assert.Equal(t, "footnotes", diags[0].Component)
		assert.Contains(t, diags[0].Message, "ghost")
	})

	t.Run("no footnotes at all", func(t *testing.T) {
		cleaned, defs, diags := ExtractFootnotes("plain text")
		assert.Equal(t, "plain text", cleaned)
		assert.Empty(t, defs)
		assert.Empty(t, diags)
	})
}
