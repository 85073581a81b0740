package entities

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// markupTagRe matches inline HTML tags, so headings that picked up fit
// spans during assembly still yield plain-text titles.
var markupTagRe = regexp.MustCompile(`<[^>]+>`)

// RawSlide is one fragment produced by the slide splitter: the 1-based
// position and the raw markdown span. It exists only between splitting and
// assembly; the assembler turns it into a Slide and discards it.
type RawSlide struct {
	Index   int    `json:"index"`
	Content string `json:"content"`
}

// Column is one marker-delimited column of slide content. Widths always
// partition 100% evenly across the column count.
type Column struct {
	Content      string  `json:"content"`
	WidthPercent float64 `json:"widthPercent"`
}

// Slide is the fully resolved form of one slide: cleaned content plus every
// feature extracted from it. Immutable once the assembler returns it.
type Slide struct {
	// Index is the slide position in the presentation (1-based)
	Index int `json:"index"`

	// Content is the cleaned display markdown: notes, directives,
	// footnote definitions, code blocks, and converted media removed
	Content string `json:"content"`

	// Notes is the speaker-note HTML, empty when the slide has none
	Notes string `json:"notes,omitempty"`

	// Columns is non-empty only when the slide uses [.column] markers
	Columns []Column `json:"columns,omitempty"`

	// Background is the slide's background media, if any
	Background *MediaReference `json:"background,omitempty"`

	// Grid holds the inline images in their computed layout
	Grid ImageGrid `json:"grid,omitempty"`

	// Videos and Audio keep their document order
	Videos []MediaReference `json:"videos,omitempty"`
	Audio  []MediaReference `json:"audio,omitempty"`

	// CodeBlocks keep their document order
	CodeBlocks []CodeBlock `json:"codeBlocks,omitempty"`

	// Formulas are sorted by their original character offset
	Formulas []MathFormula `json:"formulas,omitempty"`

	// Footnotes maps footnote ids to definitions local to this slide
	Footnotes map[string]string `json:"footnotes,omitempty"`

	Override SlideOverride `json:"override"`

	// Degraded is true for placeholder slides: assembly failed and
	// Content carries the raw, unprocessed text
	Degraded bool `json:"degraded,omitempty"`

	// Diagnostics collects the non-fatal problems hit while assembling
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// PlaceholderSlide builds the degraded form used when assembly of a slide
// fails: raw text and index survive, every feature list stays empty.
func PlaceholderSlide(index int, raw string, diags ...Diagnostic) Slide {
	return Slide{
		Index:       index,
		Content:     raw,
		Degraded:    true,
		Diagnostics: diags,
	}
}

// Validate ensures the slide is structurally sound.
func (s *Slide) Validate() error {
	if s.Index < 1 {
		return errors.New("slide index must be positive")
	}
	for _, c := range s.Columns {
		if c.WidthPercent <= 0 || c.WidthPercent > 100 {
			return errors.New("column width must be within (0, 100]")
		}
	}
	return nil
}

// ExtractTitle returns the first heading text, or a generated fallback.
func (s *Slide) ExtractTitle() string {
	for _, line := range strings.Split(s.Content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			title := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			title = strings.TrimSpace(markupTagRe.ReplaceAllString(title, ""))
			if title != "" {
				return title
			}
		}
	}
	return "Slide " + strconv.Itoa(s.Index)
}

// HasNotes returns true if the slide has speaker notes.
func (s *Slide) HasNotes() bool {
	return strings.TrimSpace(s.Notes) != ""
}
