// Package renderer turns resolved presentations into static HTML pages.
// It is a thin collaborator of the parsing core: all interpretation of the
// Deckset syntax happened upstream, this layer only lays out the resolved
// model.
package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fredcamaral/decksite/internal/domain/entities"
	"github.com/fredcamaral/decksite/internal/domain/ports"
)

// HTMLRenderer renders presentations as self-contained HTML pages. Slide
// markdown goes through goldmark; speaker notes are sanitized before they
// are embedded in the presenter overlay.
type HTMLRenderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
	titler    cases.Caser
	page      *template.Template
	index     *template.Template
}

// NewHTMLRenderer creates a new HTML renderer
func NewHTMLRenderer() (*HTMLRenderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithUnsafe(),
		),
	)

	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	index, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("span", "div", "p")

	return &HTMLRenderer{
		md:        md,
		sanitizer: policy,
		titler:    cases.Title(language.English),
		page:      page,
		index:     index,
	}, nil
}

// slideView is the template-facing projection of one slide, with the
// slide-over-global precedence already resolved.
type slideView struct {
	Index       int
	Content     template.HTML
	Notes       template.HTML
	Columns     []columnView
	Background  *entities.MediaReference
	Grid        entities.ImageGrid
	Videos      []entities.MediaReference
	Audio       []entities.MediaReference
	CodeBlocks  []template.HTML
	Transition  string
	Autoscale   bool
	ShowFooter  bool
	ShowNumbers bool
	Degraded    bool
}

type columnView struct {
	Content template.HTML
	Width   string
}

type pageView struct {
	Title     string
	Theme     string
	Footer    string
	SlideNum  bool
	Slides    []slideView
	Footnotes map[string]string
}

// RenderPresentation renders one presentation page.
func (r *HTMLRenderer) RenderPresentation(ctx context.Context, presentation *entities.Presentation) ([]byte, error) {
	if presentation == nil {
		return nil, errors.New("presentation cannot be nil")
	}

	view := pageView{
		Title:     presentation.Title,
		Theme:     presentation.Config.Theme,
		Footer:    presentation.Config.Footer,
		SlideNum:  presentation.Config.SlideNumbers,
		Footnotes: presentation.Footnotes,
	}

	for i := range presentation.Slides {
		slide := &presentation.Slides[i]
		sv, err := r.renderSlide(slide, presentation.Config)
		if err != nil {
			return nil, fmt.Errorf("rendering slide %d: %w", slide.Index, err)
		}
		view.Slides = append(view.Slides, sv)
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

// renderSlide converts one resolved slide into its template view.
func (r *HTMLRenderer) renderSlide(slide *entities.Slide, cfg entities.GlobalConfig) (slideView, error) {
	sv := slideView{
		Index:       slide.Index,
		Background:  slide.Background,
		Grid:        slide.Grid,
		Videos:      slide.Videos,
		Audio:       slide.Audio,
		Transition:  slide.Override.EffectiveTransition(cfg),
		Autoscale:   slide.Override.EffectiveAutoscale(cfg),
		ShowFooter:  slide.Override.ShowFooter(cfg),
		ShowNumbers: slide.Override.ShowSlideNumbers(cfg),
		Degraded:    slide.Degraded,
	}

	content, err := r.convert(slide.Content)
	if err != nil {
		return slideView{}, err
	}
	sv.Content = content

	// notes were already converted upstream; sanitize before embedding
	sv.Notes = template.HTML(r.sanitizer.Sanitize(slide.Notes)) // #nosec G203 - sanitized above

	for _, col := range slide.Columns {
		colHTML, err := r.convert(col.Content)
		if err != nil {
			return slideView{}, err
		}
		sv.Columns = append(sv.Columns, columnView{
			Content: colHTML,
			Width:   fmt.Sprintf("%.4g%%", col.WidthPercent),
		})
	}

	for _, block := range slide.CodeBlocks {
		// block markup is produced by the code processor from escaped
		// source; it contains no author-controlled raw HTML
		sv.CodeBlocks = append(sv.CodeBlocks, template.HTML(block.HTML)) // #nosec G203
	}

	return sv, nil
}

// convert renders markdown to HTML.
func (r *HTMLRenderer) convert(markdown string) (template.HTML, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 - goldmark output over parsed content
}

// indexEntry is one presentation on the site index.
type indexEntry struct {
	Title  string
	Slug   string
	Slides int
}

// RenderIndex renders the site index page listing every presentation.
func (r *HTMLRenderer) RenderIndex(ctx context.Context, presentations []*entities.Presentation) ([]byte, error) {
	entries := make([]indexEntry, 0, len(presentations))
	for _, p := range presentations {
		title := p.Title
		if title == "" || title == p.Slug {
			title = r.titler.String(strings.NewReplacer("-", " ", "_", " ").Replace(p.Slug))
		}
		entries = append(entries, indexEntry{Title: title, Slug: p.Slug, Slides: p.SlideCount()})
	}

	var buf bytes.Buffer
	if err := r.index.Execute(&buf, entries); err != nil {
		return nil, fmt.Errorf("executing index template: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure HTMLRenderer implements ports.SiteRenderer
var _ ports.SiteRenderer = (*HTMLRenderer)(nil)
