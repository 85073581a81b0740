package entities

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HighlightMode names which lines of a code block are emphasized.
type HighlightMode string

const (
	HighlightNone  HighlightMode = "none"
	HighlightAll   HighlightMode = "all"
	HighlightLines HighlightMode = "lines"
)

// Highlight directive errors. Unlike most directive parsing in this system,
// a malformed highlight spec is a hard error: the author explicitly asked
// for specific lines and got the syntax wrong, so the mistake is surfaced
// instead of silently degraded.
var (
	ErrNonPositiveLine = errors.New("line numbers must be positive")
	ErrInvalidRange    = errors.New("range start must not exceed range end")
	ErrInvalidToken    = errors.New("token is not a line number or range")
)

// HighlightError wraps a highlight directive failure with the directive text.
type HighlightError struct {
	Directive string
	Err       error
}

func (e *HighlightError) Error() string {
	return fmt.Sprintf("code-highlight directive %q: %v", e.Directive, e.Err)
}

func (e *HighlightError) Unwrap() error { return e.Err }

// HighlightSpec is the parsed form of a code-highlight directive: none, all,
// or an explicit set of 1-based line numbers.
type HighlightSpec struct {
	Mode  HighlightMode `json:"mode"`
	Lines map[int]bool  `json:"lines,omitempty"`
}

// NoHighlight is the spec for blocks without a directive.
func NoHighlight() HighlightSpec {
	return HighlightSpec{Mode: HighlightNone}
}

// Contains reports whether the given 1-based line is highlighted.
func (h HighlightSpec) Contains(line int) bool {
	switch h.Mode {
	case HighlightAll:
		return true
	case HighlightLines:
		return h.Lines[line]
	default:
		return false
	}
}

// SortedLines returns the explicit line set in ascending order.
func (h HighlightSpec) SortedLines() []int {
	lines := make([]int, 0, len(h.Lines))
	for n := range h.Lines {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}

// String renders the spec back to directive form, compacting contiguous
// runs into ranges ({1,2,3,5,6,8} -> "1-3,5-6,8"). Re-parsing the result
// yields the same effective line set.
func (h HighlightSpec) String() string {
	switch h.Mode {
	case HighlightAll:
		return "all"
	case HighlightLines:
		lines := h.SortedLines()
		if len(lines) == 0 {
			return "none"
		}
		var parts []string
		start, prev := lines[0], lines[0]
		flush := func() {
			switch {
			case start == prev:
				parts = append(parts, strconv.Itoa(start))
			default:
				parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
			}
		}
		for _, n := range lines[1:] {
			if n == prev+1 {
				prev = n
				continue
			}
			flush()
			start, prev = n, n
		}
		flush()
		return strings.Join(parts, ",")
	default:
		return "none"
	}
}

// CodeBlock is a processed fenced code block. Every source line is wrapped
// individually in the rendered markup so styling stays uniform whether or
// not highlighting is configured.
type CodeBlock struct {
	// Language is the normalized identifier, or "text" for anything
	// outside the supported set
	Language string `json:"language"`

	// Source is the raw, unescaped block content
	Source string `json:"source"`

	Highlight HighlightSpec `json:"highlight"`

	// HTML is the escaped, line-wrapped markup for the client-side
	// highlighter
	HTML string `json:"html"`
}

// LineCount returns the number of source lines.
func (c CodeBlock) LineCount() int {
	if c.Source == "" {
		return 0
	}
	return strings.Count(c.Source, "\n") + 1
}
