package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

func testPresentation() *entities.Presentation {
	on := true
	return &entities.Presentation{
		Slug:  "demo-deck",
		Title: "Demo Deck",
		Config: entities.GlobalConfig{
			Theme:        "zurich",
			Footer:       "ACME Corp",
			SlideNumbers: true,
		},
		Slides: []entities.Slide{
			{
				Index:   1,
				Content: "# Welcome\n\nHello **world**",
				Notes:   "<p>Say hi</p>",
			},
			{
				Index: 2,
				Columns: []entities.Column{
					{Content: "Left", WidthPercent: 50},
					{Content: "Right", WidthPercent: 50},
				},
				Override: entities.SlideOverride{
					HasColumns: true,
					HideFooter: true,
					Autoscale:  &on,
				},
			},
		},
		Footnotes: map[string]string{"1": "A source"},
	}
}

func TestHTMLRenderer_RenderPresentation(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	page, err := r.RenderPresentation(context.Background(), testPresentation())
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "<title>Demo Deck</title>")
	assert.Contains(t, html, `class="theme-zurich"`)
	assert.Contains(t, html, "assets/themes/zurich.css")

	// slide markdown went through the converter
	assert.Contains(t, html, "<strong>world</strong>")
	assert.Contains(t, html, `id="slide-1"`)
	assert.Contains(t, html, `id="slide-2"`)

	// notes land in the hidden aside
	assert.Contains(t, html, "speaker-notes")
	assert.Contains(t, html, "Say hi")

	// columns with computed widths
	assert.Contains(t, html, `width: 50%`)

	// footer shows on slide one but is hidden on slide two
	assert.Contains(t, html, "ACME Corp")

	// footnotes section
	assert.Contains(t, html, `id="fn-1"`)
	assert.Contains(t, html, "A source")
}

func TestHTMLRenderer_RenderPresentation_Nil(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	_, err = r.RenderPresentation(context.Background(), nil)
	assert.Error(t, err)
}

func TestHTMLRenderer_SanitizesNotes(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	p := &entities.Presentation{
		Slug:   "deck",
		Title:  "Deck",
		Config: entities.GlobalConfig{Theme: "default"},
		Slides: []entities.Slide{{
			Index: 1,
			Notes: `<p>fine</p><script>alert("xss")</script>`,
		}},
	}

	page, err := r.RenderPresentation(context.Background(), p)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "<p>fine</p>")
	assert.NotContains(t, html, "<script>alert")
}

func TestHTMLRenderer_CodeBlockMarkupPassesThrough(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	p := &entities.Presentation{
		Slug:   "deck",
		Title:  "Deck",
		Config: entities.GlobalConfig{Theme: "default"},
		Slides: []entities.Slide{{
			Index: 1,
			CodeBlocks: []entities.CodeBlock{{
				Language: "go",
				Source:   "a := 1",
				HTML:     `<pre class="code-block" data-language="go"><code class="language-go"><span class="code-line" data-line="1">a := 1</span></code></pre>`,
			}},
		}},
	}

	page, err := r.RenderPresentation(context.Background(), p)
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-line="1"`)
}

func TestHTMLRenderer_RenderIndex(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	presentations := []*entities.Presentation{
		{Slug: "go-basics", Title: "go-basics", Slides: make([]entities.Slide, 3)},
		{Slug: "real_title", Title: "An Actual Title", Slides: make([]entities.Slide, 1)},
	}

	page, err := r.RenderIndex(context.Background(), presentations)
	require.NoError(t, err)
	html := string(page)

	// slug-equal titles are prettified from the slug
	assert.Contains(t, html, "Go Basics")
	// real titles pass through
	assert.Contains(t, html, "An Actual Title")
	assert.Contains(t, html, `href="/slides/go-basics/"`)
	assert.Contains(t, html, "3 slides")
}
