package deckset

import (
	"context"
	"fmt"
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// autoscaleThreshold is the content length beyond which an autoscale-active
// slide gets wrapped for shrinking.
const autoscaleThreshold = 700

// Processor runs the full parsing pipeline: global config, splitting, and
// per-slide assembly. It is the only component with cross-component
// knowledge; everything upstream is independent.
type Processor struct {
	notes *NotesExtractor
}

// NewProcessor creates a processor with a shared notes extractor.
func NewProcessor() *Processor {
	return &Processor{notes: NewNotesExtractor()}
}

// Process turns one decoded presentation source into a resolved
// presentation. slug is the presentation folder name, used only for web
// path derivation. Per-slide failures degrade to placeholder slides; the
// returned error covers only presentation-level failures (unusable input).
func (p *Processor) Process(ctx context.Context, source, slug string) (*entities.Presentation, error) {
	if slug == "" {
		return nil, fmt.Errorf("processing presentation: slug is required")
	}
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("processing presentation %q: %w", slug, entities.ErrEmptyPresentation)
	}

	cfg, diags := ParseGlobalCommands(source)
	raws, splitDiags := ExtractSlides(source, cfg)
	diags = append(diags, splitDiags...)

	presentation := &entities.Presentation{
		Slug:        slug,
		Config:      cfg,
		Slides:      make([]entities.Slide, 0, len(raws)),
		Footnotes:   make(map[string]string),
		Diagnostics: diags,
	}

	resolver := NewMediaResolver(slug)
	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("processing presentation %q: %w", slug, err)
		}

		slide := p.assembleSlide(raw, cfg, resolver)
		for id, def := range slide.Footnotes {
			if _, exists := presentation.Footnotes[id]; !exists {
				presentation.Footnotes[id] = def
			}
		}
		presentation.Slides = append(presentation.Slides, slide)
	}

	if len(presentation.Slides) > 0 {
		presentation.Title = presentation.Slides[0].ExtractTitle()
	} else {
		presentation.Title = slug
	}

	if err := presentation.Validate(); err != nil {
		return nil, fmt.Errorf("processing presentation %q: %w", slug, err)
	}

	return presentation, nil
}

// assembleSlide runs the fixed stage order over one raw slide. Any failure
// degrades to a placeholder slide carrying the raw text; one bad slide
// never aborts the presentation.
func (p *Processor) assembleSlide(raw entities.RawSlide, cfg entities.GlobalConfig, resolver *MediaResolver) (slide entities.Slide) {
	defer func() {
		if r := recover(); r != nil {
			slide = entities.PlaceholderSlide(raw.Index, raw.Content, entities.Diagnostic{
				Component: "assembler",
				Message:   fmt.Sprintf("slide %d degraded: %v", raw.Index, r),
			})
		}
	}()

	slide = entities.Slide{Index: raw.Index}
	var diags []entities.Diagnostic

	// stage 1: slide directives
	slide.Override = ParseSlideCommands(raw.Content)
	content := StripSlideCommands(raw.Content)

	// stage 2: speaker notes
	content, noteText := p.notes.ExtractNotes(content)
	slide.Notes = p.notes.ConvertNotesToHTML(noteText)

	// stage 3: footnotes
	var defs map[string]string
	var fnDiags []entities.Diagnostic
	content, defs, fnDiags = ExtractFootnotes(content)
	slide.Footnotes = defs
	diags = append(diags, fnDiags...)

	// stage 4: code blocks, extracted before column splitting so fenced
	// code and highlight directives inside columns are processed too; a
	// bad highlight directive degrades the slide (strictness is surfaced
	// through the diagnostic, not swallowed)
	cleaned, blocks, err := ExtractCodeBlocks(content, cfg.CodeLanguage)
	if err != nil {
		return entities.PlaceholderSlide(raw.Index, raw.Content, entities.Diagnostic{
			Component: "code",
			Message:   err.Error(),
		})
	}
	content = cleaned
	slide.CodeBlocks = blocks

	// stage 5: columns
	if slide.Override.HasColumns {
		slide.Columns = ProcessColumns(content)
		content = ""
	}

	// stage 6: background-image directive
	if slide.Override.BackgroundImage != "" {
		ref, err := resolver.Resolve("", slide.Override.BackgroundImage)
		if err == nil {
			slide.Background = &ref
		} else {
			diags = append(diags, entities.Diagnostic{Component: "media", Message: err.Error()})
		}
	}

	// stage 7: math
	content, slide.Formulas = ProcessMathFormulas(content)

	// stage 8: autoscale wrapping
	if slide.Override.EffectiveAutoscale(cfg) && len(content) > autoscaleThreshold {
		content = "<div class=\"autoscale\">\n\n" + content + "\n\n</div>"
	}

	// stage 9: fit headers
	content = ResolveFitHeaders(content, cfg)
	for i := range slide.Columns {
		slide.Columns[i].Content = ResolveFitHeaders(slide.Columns[i].Content, cfg)
	}

	// stage 10: emoji shortcodes
	content = ResolveEmoji(content)
	slide.Notes = ResolveEmoji(slide.Notes)
	for i := range slide.Columns {
		slide.Columns[i].Content = ResolveEmoji(slide.Columns[i].Content)
	}

	// stage 11: media, resolved from the original text so references
	// survive the earlier stripping stages
	resolved, mediaDiags := resolver.ResolveAll(raw.Content)
	diags = append(diags, mediaDiags...)

	var inlineImages []entities.MediaReference
	for _, rm := range resolved {
		rm := rm
		content = strings.Replace(content, rm.Literal, "", 1)
		for i := range slide.Columns {
			slide.Columns[i].Content = strings.Replace(slide.Columns[i].Content, rm.Literal, "", 1)
		}

		switch rm.Ref.Kind {
		case entities.MediaVideo:
			slide.Videos = append(slide.Videos, rm.Ref)
		case entities.MediaAudio:
			slide.Audio = append(slide.Audio, rm.Ref)
		default:
			if rm.Ref.IsBackground() {
				if slide.Background == nil {
					slide.Background = &rm.Ref
				}
			} else {
				inlineImages = append(inlineImages, rm.Ref)
			}
		}
	}
	slide.Grid = entities.BuildImageGrid(inlineImages)

	slide.Content = strings.TrimSpace(content)
	for i := range slide.Columns {
		slide.Columns[i].Content = strings.TrimSpace(slide.Columns[i].Content)
	}
	slide.Diagnostics = diags
	return slide
}

// ProcessColumns splits marker-delimited content into equal-width columns.
// Content before the first marker, when present, becomes the first column;
// widths always partition 100% evenly.
func ProcessColumns(content string) []entities.Column {
	parts := columnMarkerRe.Split(content, -1)

	var segments []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) == 0 {
		return nil
	}

	width := 100.0 / float64(len(segments))
	columns := make([]entities.Column, 0, len(segments))
	for _, seg := range segments {
		columns = append(columns, entities.Column{Content: seg, WidthPercent: width})
	}
	return columns
}

// ResolveFitHeaders wraps [fit]-marked heading text in a fit-style marker.
// Headings whose depth is listed in the fit-headers config are wrapped even
// without the explicit marker.
func ResolveFitHeaders(content string, cfg entities.GlobalConfig) string {
	out := fitHeaderRe.ReplaceAllString(content, `$1 <span class="fit">$2</span>`)

	if len(cfg.FitHeaders) == 0 {
		return out
	}
	depths := make(map[int]bool, len(cfg.FitHeaders))
	for _, d := range cfg.FitHeaders {
		d = strings.TrimSpace(d)
		if d != "" && strings.Count(d, "#") == len(d) {
			depths[len(d)] = true
		}
	}

	return headingLineRe.ReplaceAllStringFunc(out, func(line string) string {
		marker, rest, _ := strings.Cut(line, " ")
		text := strings.TrimSpace(rest)
		if !depths[len(marker)] || strings.HasPrefix(text, `<span class="fit">`) {
			return line
		}
		return marker + ` <span class="fit">` + text + `</span>`
	})
}

// ResolveEmoji substitutes :name: shortcodes from the fixed table. Unknown
// codes pass through unchanged.
func ResolveEmoji(content string) string {
	return emojiRe.ReplaceAllStringFunc(content, func(match string) string {
		name := match[1 : len(match)-1]
		if emoji, ok := emojiShortcodes[name]; ok {
			return emoji
		}
		return match
	})
}
