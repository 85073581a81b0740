package deckset

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// NotesExtractor separates speaker notes and footnote definitions from
// slide content. Notes are caret-prefixed lines, claimed line by line so
// a note never swallows the content that follows it.
type NotesExtractor struct {
	md goldmark.Markdown
}

// NewNotesExtractor creates a notes extractor with its own markdown
// converter for note bodies.
func NewNotesExtractor() *NotesExtractor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)
	return &NotesExtractor{md: md}
}

// ExtractNotes splits caret-prefixed note lines out of the content. The
// visible content comes back without note lines; notes are newline-joined
// in document order, still in markdown form.
func (e *NotesExtractor) ExtractNotes(content string) (mainContent, notes string) {
	var contentLines, noteLines []string

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "^") {
			body := strings.TrimPrefix(trimmed, "^")
			// at most one leading space after the caret is eaten
			body = strings.TrimPrefix(body, " ")
			noteLines = append(noteLines, body)
		} else {
			contentLines = append(contentLines, line)
		}
	}

	mainContent = strings.Join(contentLines, "\n")
	notes = strings.Join(noteLines, "\n")
	return mainContent, notes
}

// ConvertNotesToHTML renders note markdown to HTML. Conversion failures
// degrade to escaped plain text, then to a <br>-joined form.
func (e *NotesExtractor) ConvertNotesToHTML(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := e.md.Convert([]byte(notes), &buf); err == nil {
		return buf.String()
	}

	escaped := html.EscapeString(notes)
	if !strings.Contains(escaped, "\n") {
		return "<p>" + escaped + "</p>"
	}
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// ExtractFootnotes pulls footnote definitions out of the text. Definitions
// are removed from the visible content; inline references stay untouched
// (the renderer resolves them visually). References without a definition
// are tolerated and reported as diagnostics.
func ExtractFootnotes(content string) (cleaned string, defs map[string]string, diags []entities.Diagnostic) {
	defs = make(map[string]string)

	for _, m := range footnoteDefRe.FindAllStringSubmatch(content, -1) {
		id := m[1]
		if _, exists := defs[id]; !exists {
			defs[id] = strings.TrimSpace(m[2])
		}
	}
	cleaned = footnoteDefRe.ReplaceAllString(content, "")

	for _, m := range footnoteRefRe.FindAllStringSubmatch(cleaned, -1) {
		if _, ok := defs[m[1]]; !ok {
			diags = append(diags, entities.Diagnostic{
				Component: "footnotes",
				Message:   fmt.Sprintf("reference [^%s] has no definition", m[1]),
			})
		}
	}

	return cleaned, defs, diags
}
