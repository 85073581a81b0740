package deckset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

func TestProcessor_Process_EndToEnd(t *testing.T) {
	source := `theme: Zurich
autoscale: true
slidenumbers: true
footer: ACME Corp

# Welcome
^ Greet the audience

Body text with :rocket: launch.

---

[.column]
Left side
[.column]
Right side

---

[.code-highlight: 1-2]
` + "```go\npackage main\n\nfunc main() {}\n```" + `

That was code.
`

	p := NewProcessor()
	presentation, err := p.Process(context.Background(), source, "launch-deck")
	require.NoError(t, err)

	assert.Equal(t, "launch-deck", presentation.Slug)
	assert.Equal(t, "Welcome", presentation.Title)
	assert.Equal(t, "Zurich", presentation.Config.Theme)
	assert.True(t, presentation.Config.Autoscale)
	assert.True(t, presentation.Config.SlideNumbers)
	assert.Equal(t, "ACME Corp", presentation.Config.Footer)

	require.Len(t, presentation.Slides, 3)
	assert.Equal(t, 0, presentation.DegradedCount())

	first := presentation.Slides[0]
	assert.Equal(t, 1, first.Index)
	assert.Contains(t, first.Notes, "Greet the audience")
	assert.NotContains(t, first.Content, "^")
	assert.Contains(t, first.Content, "🚀")
	assert.NotContains(t, first.Content, ":rocket:")

	second := presentation.Slides[1]
	require.Len(t, second.Columns, 2)
	assert.Equal(t, "Left side", second.Columns[0].Content)
	assert.Equal(t, "Right side", second.Columns[1].Content)
	assert.InDelta(t, 50.0, second.Columns[0].WidthPercent, 0.001)
	assert.InDelta(t, 50.0, second.Columns[1].WidthPercent, 0.001)
	assert.Empty(t, second.Content)

	third := presentation.Slides[2]
	require.Len(t, third.CodeBlocks, 1)
	assert.Equal(t, "go", third.CodeBlocks[0].Language)
	assert.Equal(t, []int{1, 2}, third.CodeBlocks[0].Highlight.SortedLines())
	assert.NotContains(t, third.Content, "```")
	assert.NotContains(t, third.Content, "code-highlight")
	assert.Contains(t, third.Content, "That was code.")
}

func TestProcessor_Process_Errors(t *testing.T) {
	p := NewProcessor()

	t.Run("empty source", func(t *testing.T) {
		_, err := p.Process(context.Background(), "   \n  ", "deck")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyPresentation)
	})

	t.Run("missing slug", func(t *testing.T) {
		_, err := p.Process(context.Background(), "# Hi", "")
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Process(ctx, "# Hi", "deck")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestProcessor_Process_DegradedSlide(t *testing.T) {
	source := "# Good slide\n\n---\n\n[.code-highlight: 5-3]\n```go\nx := 1\n```"

	p := NewProcessor()
	presentation, err := p.Process(context.Background(), source, "deck")
	require.NoError(t, err)

	require.Len(t, presentation.Slides, 2)
	assert.False(t, presentation.Slides[0].Degraded)

	bad := presentation.Slides[1]
	assert.True(t, bad.Degraded)
	// the raw text survives in the placeholder
	assert.Contains(t, bad.Content, "[.code-highlight: 5-3]")
	require.NotEmpty(t, bad.Diagnostics)
	assert.Equal(t, "code", bad.Diagnostics[0].Component)
	assert.Equal(t, 1, presentation.DegradedCount())
}

func TestProcessor_Process_ColumnCode(t *testing.T) {
	source := "[.column]\nLeft\n\n[.code-highlight: 1]\n```go\na := 1\n```\n\n[.column]\nRight"

	p := NewProcessor()
	presentation, err := p.Process(context.Background(), source, "deck")
	require.NoError(t, err)

	require.Len(t, presentation.Slides, 1)
	slide := presentation.Slides[0]
	assert.False(t, slide.Degraded)

	// fenced code inside a column is extracted like any other code
	require.Len(t, slide.CodeBlocks, 1)
	assert.Equal(t, "go", slide.CodeBlocks[0].Language)
	assert.Equal(t, []int{1}, slide.CodeBlocks[0].Highlight.SortedLines())

	require.Len(t, slide.Columns, 2)
	assert.Equal(t, "Left", slide.Columns[0].Content)
	assert.Equal(t, "Right", slide.Columns[1].Content)
	for _, col := range slide.Columns {
		assert.NotContains(t, col.Content, "code-highlight")
		assert.NotContains(t, col.Content, "```")
	}
}

func TestProcessor_Process_FencedDirectiveSample(t *testing.T) {
	// A fenced markdown sample demonstrating the directive syntax is code
	// content, not a directive; the slide must not degrade.
	source := "# Syntax\n\n```markdown\n[.code-highlight: all]\n```\n"

	p := NewProcessor()
	presentation, err := p.Process(context.Background(), source, "deck")
	require.NoError(t, err)

	require.Len(t, presentation.Slides, 1)
	slide := presentation.Slides[0]
	assert.False(t, slide.Degraded)

	require.Len(t, slide.CodeBlocks, 1)
	assert.Equal(t, entities.HighlightNone, slide.CodeBlocks[0].Highlight.Mode)
	assert.Contains(t, slide.CodeBlocks[0].Source, "[.code-highlight: all]")
	assert.NotContains(t, slide.Content, "code-highlight")
}

func TestProcessor_Process_Media(t *testing.T) {
	p := NewProcessor()

	t.Run("first background wins", func(t *testing.T) {
		source := "![](first.jpg)\n\n# Hello\n\n![](second.jpg)"
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)

		slide := presentation.Slides[0]
		require.NotNil(t, slide.Background)
		assert.Equal(t, "first.jpg", slide.Background.RawPath)
		assert.Empty(t, slide.Grid.Images)
		assert.NotContains(t, slide.Content, "![")
	})

	t.Run("inline images form a grid", func(t *testing.T) {
		source := "# Gallery\n\n![inline](a.png)\n![inline](b.png)"
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)

		grid := presentation.Slides[0].Grid
		assert.Equal(t, 2, grid.Columns)
		require.Len(t, grid.Images, 2)
		assert.Equal(t, 0, grid.Images[0].Row)
		assert.Equal(t, 0, grid.Images[0].Col)
		assert.Equal(t, 0, grid.Images[1].Row)
		assert.Equal(t, 1, grid.Images[1].Col)
	})

	t.Run("background directive beats markdown backgrounds", func(t *testing.T) {
		source := "[.background-image: hero.jpg]\n\n# Title\n\n![](other.jpg)"
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)

		slide := presentation.Slides[0]
		require.NotNil(t, slide.Background)
		assert.Equal(t, "hero.jpg", slide.Background.RawPath)
	})

	t.Run("videos and audio keep document order", func(t *testing.T) {
		source := "# Media\n\n![autoplay](one.mp4)\n![](two.mp4)\n![](voice.mp3)"
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)

		slide := presentation.Slides[0]
		require.Len(t, slide.Videos, 2)
		assert.Equal(t, "one.mp4", slide.Videos[0].RawPath)
		assert.True(t, slide.Videos[0].Modifiers.Autoplay)
		require.Len(t, slide.Audio, 1)
		assert.Equal(t, "voice.mp3", slide.Audio[0].RawPath)
	})
}

func TestProcessor_Process_Footnotes(t *testing.T) {
	source := "Claim[^1]\n\n[^1]: On slide one\n\n---\n\nOther[^2]\n\n[^2]: On slide two\n[^1]: Duplicate ignored"

	p := NewProcessor()
	presentation, err := p.Process(context.Background(), source, "deck")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"1": "On slide one",
		"2": "On slide two",
	}, presentation.Footnotes)
}

func TestProcessor_Process_Autoscale(t *testing.T) {
	p := NewProcessor()

	t.Run("long content on an autoscale slide is wrapped", func(t *testing.T) {
		long := strings.Repeat("word ", 200)
		source := "autoscale: true\n\n# Big\n\n" + long
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)
		assert.Contains(t, presentation.Slides[0].Content, `<div class="autoscale">`)
	})

	t.Run("short content is never wrapped", func(t *testing.T) {
		source := "autoscale: true\n\n# Small"
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)
		assert.NotContains(t, presentation.Slides[0].Content, "autoscale")
	})

	t.Run("slide directive overrides the global setting", func(t *testing.T) {
		long := strings.Repeat("word ", 200)
		source := "autoscale: true\n\n[.autoscale: false]\n\n# Off\n\n" + long
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)
		assert.NotContains(t, presentation.Slides[0].Content, `<div class="autoscale">`)
	})
}

func TestProcessor_Process_FitHeaders(t *testing.T) {
	p := NewProcessor()

	t.Run("explicit fit marker", func(t *testing.T) {
		presentation, err := p.Process(context.Background(), "# [fit] Huge Title", "deck")
		require.NoError(t, err)
		assert.Equal(t, `# <span class="fit">Huge Title</span>`, presentation.Slides[0].Content)
	})

	t.Run("configured depths wrap without a marker", func(t *testing.T) {
		source := "fit-headers: #\n\n# Wrapped\n\n## Untouched"
		presentation, err := p.Process(context.Background(), source, "deck")
		require.NoError(t, err)
		content := presentation.Slides[0].Content
		assert.Contains(t, content, `# <span class="fit">Wrapped</span>`)
		assert.Contains(t, content, "## Untouched")
		assert.NotContains(t, content, `## <span`)
	})
}

func TestProcessColumns(t *testing.T) {
	t.Run("two markers give two equal columns", func(t *testing.T) {
		cols := ProcessColumns("[.column]\nLeft\n[.column]\nRight")
		require.Len(t, cols, 2)
		assert.InDelta(t, 50.0, cols[0].WidthPercent, 0.001)
	})

	t.Run("content before the first marker becomes the first column", func(t *testing.T) {
		cols := ProcessColumns("Intro\n[.column]\nLeft\n[.column]\nRight")
		require.Len(t, cols, 3)
		assert.Equal(t, "Intro", cols[0].Content)
		assert.InDelta(t, 100.0/3, cols[0].WidthPercent, 0.001)
	})

	t.Run("empty segments are dropped", func(t *testing.T) {
		cols := ProcessColumns("[.column]\n\n[.column]\nOnly")
		require.Len(t, cols, 1)
		assert.InDelta(t, 100.0, cols[0].WidthPercent, 0.001)
	})
}

func TestResolveEmoji(t *testing.T) {
	assert.Equal(t, "launch 🚀 now", ResolveEmoji("launch :rocket: now"))
	assert.Equal(t, "👍 and 💯", ResolveEmoji(":+1: and :100:"))
	assert.Equal(t, ":unknown_code: stays", ResolveEmoji(":unknown_code: stays"))
}
