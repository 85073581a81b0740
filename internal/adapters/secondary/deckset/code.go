package deckset

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// ParseHighlightDirective parses a code-highlight spec: "none"/"" selects
// nothing, "all" selects every line, otherwise a comma-list of positive
// integers and inclusive start-end ranges. Malformed specs are hard errors:
// the author explicitly wrote the directive, so the mistake is surfaced
// instead of silently degraded like the other directive parsers.
func ParseHighlightDirective(directive string) (entities.HighlightSpec, error) {
	trimmed := strings.TrimSpace(directive)
	switch strings.ToLower(trimmed) {
	case "", "none":
		return entities.HighlightSpec{Mode: entities.HighlightNone}, nil
	case "all":
		return entities.HighlightSpec{Mode: entities.HighlightAll}, nil
	}

	lines := make(map[int]bool)
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return entities.HighlightSpec{}, &entities.HighlightError{
				Directive: directive, Err: entities.ErrInvalidToken,
			}
		}

		if start, end, ok := strings.Cut(token, "-"); ok {
			lo, err1 := strconv.Atoi(strings.TrimSpace(start))
			hi, err2 := strconv.Atoi(strings.TrimSpace(end))
			if err1 != nil || err2 != nil {
				return entities.HighlightSpec{}, &entities.HighlightError{
					Directive: directive, Err: entities.ErrInvalidToken,
				}
			}
			if lo < 1 || hi < 1 {
				return entities.HighlightSpec{}, &entities.HighlightError{
					Directive: directive, Err: entities.ErrNonPositiveLine,
				}
			}
			if lo > hi {
				return entities.HighlightSpec{}, &entities.HighlightError{
					Directive: directive, Err: entities.ErrInvalidRange,
				}
			}
			for n := lo; n <= hi; n++ {
				lines[n] = true
			}
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil {
			return entities.HighlightSpec{}, &entities.HighlightError{
				Directive: directive, Err: entities.ErrInvalidToken,
			}
		}
		if n < 1 {
			return entities.HighlightSpec{}, &entities.HighlightError{
				Directive: directive, Err: entities.ErrNonPositiveLine,
			}
		}
		lines[n] = true
	}

	return entities.HighlightSpec{Mode: entities.HighlightLines, Lines: lines}, nil
}

// NormalizeLanguage lower-cases and trims the identifier, resolves the
// alias table, and falls back to "text" for anything outside the supported
// vocabulary.
func NormalizeLanguage(lang string) string {
	normalized := strings.ToLower(strings.TrimSpace(lang))
	if normalized == "" {
		return "text"
	}
	if canonical, ok := languageAliases[normalized]; ok {
		normalized = canonical
	}
	if !supportedLanguages[normalized] {
		return "text"
	}
	return normalized
}

// ProcessCodeBlock builds the processed block: normalized language, the
// highlight spec, and escaped markup with every line individually wrapped
// so downstream styling is uniform with or without highlighting.
func ProcessCodeBlock(source, language string, highlight entities.HighlightSpec) entities.CodeBlock {
	block := entities.CodeBlock{
		Language:  NormalizeLanguage(language),
		Source:    source,
		Highlight: highlight,
	}
	block.HTML = renderCodeHTML(block)
	return block
}

// renderCodeHTML emits the line-wrapped markup. The block element carries a
// data attribute naming the highlight mode so presentation stays in CSS.
func renderCodeHTML(block entities.CodeBlock) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<pre class="code-block" data-language="%s" data-highlight="%s"><code class="language-%s">`,
		block.Language, block.Highlight.Mode, block.Language)
	b.WriteString("\n")

	for i, line := range strings.Split(block.Source, "\n") {
		num := i + 1
		class := "code-line"
		if block.Highlight.Contains(num) {
			class = "code-line highlighted"
		}
		fmt.Fprintf(&b, `<span class="%s" data-line="%d">%s</span>`, class, num, escapeCode(line))
		b.WriteString("\n")
	}

	b.WriteString("</code></pre>")
	return b.String()
}

// escapeCode entity-escapes the five HTML-significant characters.
func escapeCode(line string) string {
	return html.EscapeString(line)
}

// extractedBlock is a processed code block plus the span it occupied, so
// the assembler can cut it from the visible content.
type extractedBlock struct {
	Block entities.CodeBlock
	Start int
	End   int
}

// ExtractCodeBlocks finds every fenced code block, pairs each preceding
// [.code-highlight] directive with the nearest following fence, and returns
// the cleaned text plus the processed blocks in document order. defaultLang
// applies to fences without a language tag. A malformed highlight directive
// aborts with a HighlightError; code blocks themselves never fail.
func ExtractCodeBlocks(slideText, defaultLang string) (string, []entities.CodeBlock, error) {
	fences := fencedCodeRe.FindAllStringSubmatchIndex(slideText, -1)

	// A directive-shaped line inside a fence is code content, not a
	// directive (a markdown sample demonstrating the syntax, say).
	var directives [][]int
	for _, d := range codeHighlightRe.FindAllStringSubmatchIndex(slideText, -1) {
		if !withinFence(fences, d[0]) {
			directives = append(directives, d)
		}
	}

	// Bind each directive to the first fence that starts after it. When
	// several directives precede the same fence, the last one wins.
	specs := make(map[int]entities.HighlightSpec, len(directives))
	for _, d := range directives {
		text := slideText[d[2]:d[3]]
		spec, err := ParseHighlightDirective(text)
		if err != nil {
			return "", nil, err
		}
		for fi, f := range fences {
			if f[0] >= d[1] {
				specs[fi] = spec
				break
			}
		}
	}

	var blocks []entities.CodeBlock
	var spans []extractedBlock
	for fi, f := range fences {
		lang := strings.TrimSpace(slideText[f[2]:f[3]])
		if lang == "" {
			lang = defaultLang
		}
		source := slideText[f[4]:f[5]]
		source = strings.TrimSuffix(source, "\n")

		spec, ok := specs[fi]
		if !ok {
			spec = entities.NoHighlight()
		}

		block := ProcessCodeBlock(source, lang, spec)
		blocks = append(blocks, block)
		spans = append(spans, extractedBlock{Block: block, Start: f[0], End: f[1]})
	}

	cleaned := removeSpans(slideText, spans, directives)
	return cleaned, blocks, nil
}

// withinFence reports whether pos falls inside one of the fence spans.
func withinFence(fences [][]int, pos int) bool {
	for _, f := range fences {
		if pos >= f[0] && pos < f[1] {
			return true
		}
	}
	return false
}

// removeSpans cuts the fence spans and directive lines out of the text,
// back to front so earlier offsets stay valid.
func removeSpans(text string, blocks []extractedBlock, directives [][]int) string {
	type span struct{ start, end int }
	var all []span
	for _, b := range blocks {
		all = append(all, span{b.Start, b.End})
	}
	for _, d := range directives {
		all = append(all, span{d[0], d[1]})
	}

	// spans never overlap; sort descending by start
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].start > all[j-1].start; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}

	for _, s := range all {
		text = text[:s.start] + text[s.end:]
	}
	return text
}
