package deckset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// ProcessMathFormulas extracts LaTeX spans from slide text and rewrites the
// text with renderer delimiters: \[...\] for display spans, \(...\) for
// inline spans. Display spans are placeholder-substituted before inline
// matching so their content can never be re-matched as inline. Formulas are
// returned sorted by their original character offset; invalid ones are
// flagged, not dropped.
func ProcessMathFormulas(text string) (string, []entities.MathFormula) {
	var formulas []entities.MathFormula

	type placed struct {
		key     string
		content string
		kind    entities.MathKind
	}
	var placeholders []placed

	out := displayMathRe.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.TrimSpace(match[2 : len(match)-2])
		key := fmt.Sprintf("\x00MATH:D:%d\x00", len(placeholders))
		placeholders = append(placeholders, placed{key, content, entities.MathDisplay})
		return key
	})

	out = inlineMathRe.ReplaceAllStringFunc(out, func(match string) string {
		content := strings.TrimSpace(match[1 : len(match)-1])
		if content == "" {
			return match
		}
		key := fmt.Sprintf("\x00MATH:I:%d\x00", len(placeholders))
		placeholders = append(placeholders, placed{key, content, entities.MathInline})
		return key
	})

	for _, p := range placeholders {
		offset := strings.Index(out, p.key)
		var replacement string
		if p.kind == entities.MathDisplay {
			replacement = `\[` + p.content + `\]`
		} else {
			replacement = `\(` + p.content + `\)`
		}
		out = strings.Replace(out, p.key, replacement, 1)
		formulas = append(formulas, entities.MathFormula{
			Kind:    p.kind,
			Content: p.content,
			Offset:  offset,
			Valid:   ValidateLaTeXSyntax(p.content),
		})
	}

	sort.SliceStable(formulas, func(i, j int) bool {
		return formulas[i].Offset < formulas[j].Offset
	})

	return out, formulas
}

// ValidateLaTeXSyntax runs the structural checks: brace balance outside
// escapes, \begin/\end multiset equality per environment name, and a small
// set of likely-error patterns. Advisory only; extraction proceeds either
// way.
func ValidateLaTeXSyntax(content string) bool {
	if !bracesBalanced(content) {
		return false
	}
	if !environmentsMatched(content) {
		return false
	}
	if hasForbiddenPatterns(content) {
		return false
	}
	return true
}

// bracesBalanced checks { } pairing, ignoring \{ and \}.
func bracesBalanced(content string) bool {
	depth := 0
	escaped := false
	for _, c := range content {
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// environmentsMatched verifies every \begin{env} has a matching \end{env}
// by multiset equality per environment name, not nesting order.
func environmentsMatched(content string) bool {
	counts := make(map[string]int)
	for _, m := range beginEnvRe.FindAllStringSubmatch(content, -1) {
		counts[m[1]]++
	}
	for _, m := range endEnvRe.FindAllStringSubmatch(content, -1) {
		counts[m[1]]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// hasForbiddenPatterns flags the likely-error constructs: an ampersand
// outside an alignment environment, an unescaped percent sign, a triple
// backslash, or a nested $$.
func hasForbiddenPatterns(content string) bool {
	if strings.Contains(content, `\\\`) {
		return true
	}
	if strings.Contains(content, "$$") {
		return true
	}
	if hasUnescapedRune(content, '%') {
		return true
	}
	if hasUnescapedRune(content, '&') && !insideAlignmentEnv(content) {
		return true
	}
	return false
}

func hasUnescapedRune(content string, target rune) bool {
	escaped := false
	for _, c := range content {
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == target {
			return true
		}
	}
	return false
}

// insideAlignmentEnv reports whether the content opens any environment in
// which bare ampersands are legitimate alignment syntax.
func insideAlignmentEnv(content string) bool {
	for _, m := range beginEnvRe.FindAllStringSubmatch(content, -1) {
		if mathEnvironmentsWithAmpersand[m[1]] {
			return true
		}
	}
	return false
}
