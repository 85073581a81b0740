package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlide_Validate(t *testing.T) {
	t.Run("valid slide", func(t *testing.T) {
		s := Slide{Index: 1, Content: "# Hi"}
		assert.NoError(t, s.Validate())
	})

	t.Run("index must be positive", func(t *testing.T) {
		s := Slide{Index: 0}
		assert.Error(t, s.Validate())
	})

	t.Run("column widths must be within range", func(t *testing.T) {
		s := Slide{Index: 1, Columns: []Column{{Content: "a", WidthPercent: 0}}}
		assert.Error(t, s.Validate())

		s.Columns[0].WidthPercent = 101
		assert.Error(t, s.Validate())

		s.Columns[0].WidthPercent = 50
		assert.NoError(t, s.Validate())
	})
}

func TestSlide_ExtractTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		index   int
		want    string
	}{
		{name: "first heading", content: "# Welcome\n\ntext", index: 1, want: "Welcome"},
		{name: "deeper heading works", content: "text\n\n## Section Two", index: 1, want: "Section Two"},
		{name: "no heading falls back to index", content: "just text", index: 4, want: "Slide 4"},
		{name: "fit span markup is stripped", content: `# <span class="fit">Huge Title</span>`, index: 1, want: "Huge Title"},
		{name: "heading with only markup is skipped", content: "# <span class=\"fit\"></span>\n## Real", index: 1, want: "Real"},
		{name: "empty heading is skipped", content: "#\n## Real", index: 1, want: "Real"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Slide{Index: tt.index, Content: tt.content}
			assert.Equal(t, tt.want, s.ExtractTitle())
		})
	}
}

func TestPlaceholderSlide(t *testing.T) {
	d := Diagnostic{Component: "assembler", Message: "boom"}
	s := PlaceholderSlide(3, "raw text", d)

	assert.Equal(t, 3, s.Index)
	assert.Equal(t, "raw text", s.Content)
	assert.True(t, s.Degraded)
	require.Len(t, s.Diagnostics, 1)
	assert.Equal(t, "assembler", s.Diagnostics[0].Component)
	assert.Empty(t, s.CodeBlocks)
	assert.Empty(t, s.Columns)
	assert.Nil(t, s.Background)
}

func TestSlide_HasNotes(t *testing.T) {
	assert.False(t, (&Slide{}).HasNotes())
	assert.False(t, (&Slide{Notes: "  \n"}).HasNotes())
	assert.True(t, (&Slide{Notes: "<p>hi</p>"}).HasNotes())
}
