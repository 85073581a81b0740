package deckset

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// ExtractSlides segments the markdown body into ordered raw slides. The
// leading frontmatter block and leading global-command lines are stripped
// first; then either the configured divider headings or the separator
// patterns cut the text. A document that cannot be split is one slide; a
// document of only separators is zero slides.
func ExtractSlides(markdown string, cfg entities.GlobalConfig) ([]entities.RawSlide, []entities.Diagnostic) {
	var diags []entities.Diagnostic

	body := strings.ReplaceAll(markdown, "\r\n", "\n")
	body, frontmatterOK := stripFrontmatter(body)
	if !frontmatterOK {
		diags = append(diags, entities.Diagnostic{
			Component: "splitter",
			Message:   "frontmatter block is not valid YAML, stripped anyway",
		})
	}
	body = stripLeadingCommands(body)

	var fragments []string
	if len(cfg.SlideDividers) > 0 {
		fragments = splitByDividers(body, cfg.SlideDividers)
	} else {
		fragments = splitBySeparators(body)
	}

	slides := make([]entities.RawSlide, 0, len(fragments))
	for _, frag := range fragments {
		trimmed := strings.TrimSpace(frag)
		if trimmed == "" {
			continue
		}
		slides = append(slides, entities.RawSlide{
			Index:   len(slides) + 1,
			Content: trimmed,
		})
	}
	return slides, diags
}

// stripFrontmatter removes a leading YAML frontmatter block. The block is
// stripped positionally even when its YAML does not parse; the second
// return reports whether the YAML was valid, for diagnostics.
func stripFrontmatter(text string) (string, bool) {
	m := frontmatterRe.FindStringSubmatch(text)
	if m == nil {
		return text, true
	}
	var parsed map[string]interface{}
	valid := yaml.Unmarshal([]byte(m[1]), &parsed) == nil
	return text[len(m[0]):], valid
}

// stripLeadingCommands drops global command lines (and the blank lines
// between them) from the top of the body. Command-shaped lines further down
// belong to slide content and stay.
func stripLeadingCommands(text string) string {
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || globalCommandLine.MatchString(lines[i]) {
			i++
			continue
		}
		break
	}
	return strings.Join(lines[i:], "\n")
}

// splitByDividers cuts the body at every heading whose marker depth matches
// one of the configured divider markers. The divider heading starts the
// slide it introduces.
func splitByDividers(body string, dividers []string) []string {
	depths := make(map[int]bool, len(dividers))
	for _, d := range dividers {
		d = strings.TrimSpace(d)
		if d != "" && strings.Count(d, "#") == len(d) {
			depths[len(d)] = true
		}
	}
	if len(depths) == 0 {
		return splitBySeparators(body)
	}

	var offsets []int
	for _, loc := range headingLineRe.FindAllStringSubmatchIndex(body, -1) {
		marker := body[loc[2]:loc[3]]
		if depths[len(marker)] {
			offsets = append(offsets, loc[0])
		}
	}
	if len(offsets) == 0 {
		return []string{body}
	}
	sort.Ints(offsets)

	var fragments []string
	if offsets[0] > 0 {
		fragments = append(fragments, body[:offsets[0]])
	}
	for i, off := range offsets {
		end := len(body)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		fragments = append(fragments, body[off:end])
	}
	return fragments
}

// splitBySeparators tries the separator patterns in priority order and uses
// the first one that actually splits the text.
func splitBySeparators(body string) []string {
	for _, re := range separatorRes {
		parts := re.Split(body, -1)
		if len(parts) > 1 {
			return parts
		}
	}
	return []string{body}
}
