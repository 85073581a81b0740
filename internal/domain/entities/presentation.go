package entities

import (
	"errors"
	"fmt"
)

// ErrEmptyPresentation signals input that yielded no usable content at all.
var ErrEmptyPresentation = errors.New("presentation has no content")

// Presentation is the terminal output of the parsing core: the global config
// plus the ordered, fully resolved slides. The renderer consumes it as-is.
type Presentation struct {
	// ID is a unique identifier stamped by the generator
	ID string `json:"id,omitempty"`

	// Slug is the presentation folder name; it anchors web paths
	// (slides/<slug>/...)
	Slug string `json:"slug"`

	// Title is the display title derived from the first slide or slug
	Title string `json:"title"`

	Config GlobalConfig `json:"config"`

	// Slides keeps original document order; may be empty for documents
	// that contain only separators
	Slides []Slide `json:"slides"`

	// Footnotes maps presentation-scoped footnote ids to definitions
	Footnotes map[string]string `json:"footnotes,omitempty"`

	// Diagnostics collects presentation-level parsing problems
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Validate ensures the presentation is structurally sound. An empty slide
// sequence is valid (a document of only separators parses to zero slides).
func (p *Presentation) Validate() error {
	if p.Slug == "" {
		return errors.New("presentation slug is required")
	}
	for i := range p.Slides {
		if err := p.Slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

// SlideCount returns the total number of slides.
func (p *Presentation) SlideCount() int {
	return len(p.Slides)
}

// GetSlideByIndex returns a slide by its 1-based index.
func (p *Presentation) GetSlideByIndex(index int) (*Slide, error) {
	if index < 1 || index > len(p.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (1-%d)", index, len(p.Slides))
	}
	return &p.Slides[index-1], nil
}

// DegradedCount returns how many slides fell back to placeholders.
func (p *Presentation) DegradedCount() int {
	n := 0
	for i := range p.Slides {
		if p.Slides[i].Degraded {
			n++
		}
	}
	return n
}
