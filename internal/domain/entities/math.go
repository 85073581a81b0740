package entities

// MathKind distinguishes display formulas ($$...$$) from inline ones ($...$).
type MathKind string

const (
	MathDisplay MathKind = "display"
	MathInline  MathKind = "inline"
)

// MathFormula is a LaTeX span extracted from slide content. Formulas are
// validated structurally only; rendering belongs to the client-side
// renderer, which receives \[...\] and \(...\) delimited text.
type MathFormula struct {
	Kind MathKind `json:"kind"`

	// Content is the LaTeX source without delimiters
	Content string `json:"content"`

	// Offset is the character position of the span in the slide text,
	// used to keep output ordering stable
	Offset int `json:"offset"`

	// Valid is false when structural checks (brace balance, environment
	// pairing, forbidden patterns) flagged the formula; invalid formulas
	// are still returned and the renderer decides on a fallback
	Valid bool `json:"valid"`
}
