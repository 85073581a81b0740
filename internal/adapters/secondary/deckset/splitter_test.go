package deckset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

func TestExtractSlides_Separators(t *testing.T) {
	cfg := entities.DefaultGlobalConfig()

	t.Run("document without separators is one slide", func(t *testing.T) {
		slides, diags := ExtractSlides("# Only slide\n\nBody text", cfg)
		assert.Empty(t, diags)
		require.Len(t, slides, 1)
		assert.Equal(t, 1, slides[0].Index)
		assert.Equal(t, "# Only slide\n\nBody text", slides[0].Content)
	})

	t.Run("n separators yield n plus one slides", func(t *testing.T) {
		source := "# One\n\n---\n\n# Two\n\n---\n\n# Three"
		slides, _ := ExtractSlides(source, cfg)
		require.Len(t, slides, 3)
		assert.Equal(t, "# One", slides[0].Content)
		assert.Equal(t, "# Two", slides[1].Content)
		assert.Equal(t, "# Three", slides[2].Content)
		for i, s := range slides {
			assert.Equal(t, i+1, s.Index)
		}
	})

	t.Run("longer dash runs separate too", func(t *testing.T) {
		slides, _ := ExtractSlides("a\n\n-----\n\nb", cfg)
		require.Len(t, slides, 2)
	})

	t.Run("separator without framing blank lines still splits", func(t *testing.T) {
		slides, _ := ExtractSlides("a\n---\nb", cfg)
		require.Len(t, slides, 2)
		assert.Equal(t, "a", slides[0].Content)
		assert.Equal(t, "b", slides[1].Content)
	})

	t.Run("empty fragments are dropped and indexes stay contiguous", func(t *testing.T) {
		source := "# One\n\n---\n\n\n\n---\n\n# Two"
		slides, _ := ExtractSlides(source, cfg)
		require.Len(t, slides, 2)
		assert.Equal(t, 1, slides[0].Index)
		assert.Equal(t, 2, slides[1].Index)
	})

	t.Run("document of only separators is zero slides", func(t *testing.T) {
		slides, _ := ExtractSlides("---\n\n---", cfg)
		assert.Empty(t, slides)
	})

	t.Run("crlf input is normalized", func(t *testing.T) {
		slides, _ := ExtractSlides("a\r\n\r\n---\r\n\r\nb", cfg)
		require.Len(t, slides, 2)
	})
}

func TestExtractSlides_Frontmatter(t *testing.T) {
	cfg := entities.DefaultGlobalConfig()

	t.Run("valid frontmatter is stripped silently", func(t *testing.T) {
		source := "---\ntitle: My Deck\n---\n# Slide"
		slides, diags := ExtractSlides(source, cfg)
		assert.Empty(t, diags)
		require.Len(t, slides, 1)
		assert.Equal(t, "# Slide", slides[0].Content)
	})

	t.Run("invalid frontmatter is stripped with a diagnostic", func(t *testing.T) {
		source := "---\ntitle: [unclosed\n---\n# Slide"
		slides, diags := ExtractSlides(source, cfg)
		require.Len(t, diags, 1)
		assert.Equal(t, "splitter", diags[0].Component)
		require.Len(t, slides, 1)
		assert.Equal(t, "# Slide", slides[0].Content)
	})
}

func TestExtractSlides_LeadingCommands(t *testing.T) {
	cfg := entities.DefaultGlobalConfig()

	t.Run("leading command lines are stripped", func(t *testing.T) {
		source := "theme: Zurich\nautoscale: true\n\n# Title\n\nBody"
		slides, _ := ExtractSlides(source, cfg)
		require.Len(t, slides, 1)
		assert.Equal(t, "# Title\n\nBody", slides[0].Content)
	})

	t.Run("command-shaped lines inside content stay", func(t *testing.T) {
		source := "# Title\n\ntheme: Zurich"
		slides, _ := ExtractSlides(source, cfg)
		require.Len(t, slides, 1)
		assert.Contains(t, slides[0].Content, "theme: Zurich")
	})
}

func TestExtractSlides_Dividers(t *testing.T) {
	t.Run("configured heading depth starts a new slide", func(t *testing.T) {
		cfg := entities.DefaultGlobalConfig()
		cfg.SlideDividers = []string{"#"}

		source := "intro text\n\n# First\n\nbody\n\n# Second\n\n## subsection stays"
		slides, _ := ExtractSlides(source, cfg)
		require.Len(t, slides, 3)
		assert.Equal(t, "intro text", slides[0].Content)
		assert.True(t, len(slides[1].Content) > 0 && slides[1].Content[0] == '#')
		assert.Contains(t, slides[2].Content, "## subsection stays")
	})

	t.Run("multiple divider depths", func(t *testing.T) {
		cfg := entities.DefaultGlobalConfig()
		cfg.SlideDividers = []string{"#", "##"}

		source := "# A\n\n## B\n\ntext"
		slides, _ := ExtractSlides(source, cfg)
		require.Len(t, slides, 2)
	})

	t.Run("no matching headings keeps the document whole", func(t *testing.T) {
		cfg := entities.DefaultGlobalConfig()
		cfg.SlideDividers = []string{"###"}

		slides, _ := ExtractSlides("# A\n\n## B", cfg)
		require.Len(t, slides, 1)
	})
}
