package deckset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// globalCommand binds one command pattern to the field it populates. The
// directive soup is handled as a flat table of independent matchers, not a
// grammar: each command scans the whole text on its own and only the first
// match counts.
type globalCommand struct {
	name  string
	re    *regexp.Regexp
	apply func(cfg *entities.GlobalConfig, value string) error
}

var globalCommands = []globalCommand{
	{"theme", themeRe, func(cfg *entities.GlobalConfig, v string) error {
		cfg.Theme = strings.TrimSpace(v)
		return nil
	}},
	{"autoscale", autoscaleRe, func(cfg *entities.GlobalConfig, v string) error {
		return applyBool(&cfg.Autoscale, v)
	}},
	{"slidenumbers", slideNumbersRe, func(cfg *entities.GlobalConfig, v string) error {
		return applyBool(&cfg.SlideNumbers, v)
	}},
	{"slidecount", slideCountRe, func(cfg *entities.GlobalConfig, v string) error {
		return applyBool(&cfg.SlideCount, v)
	}},
	{"footer", footerRe, func(cfg *entities.GlobalConfig, v string) error {
		cfg.Footer = strings.TrimSpace(v)
		return nil
	}},
	{"background-image", backgroundRe, func(cfg *entities.GlobalConfig, v string) error {
		cfg.BackgroundImage = strings.TrimSpace(v)
		return nil
	}},
	{"build-lists", buildListsRe, func(cfg *entities.GlobalConfig, v string) error {
		return applyBool(&cfg.BuildLists, v)
	}},
	{"slide-transition", transitionRe, func(cfg *entities.GlobalConfig, v string) error {
		cfg.SlideTransition = strings.TrimSpace(v)
		return nil
	}},
	{"code-language", codeLanguageRe, func(cfg *entities.GlobalConfig, v string) error {
		cfg.CodeLanguage = strings.ToLower(strings.TrimSpace(v))
		return nil
	}},
	{"fit-headers", fitHeadersRe, func(cfg *entities.GlobalConfig, v string) error {
		cfg.FitHeaders = splitCommandList(v)
		return nil
	}},
	{"slide-dividers", slideDividersRe, func(cfg *entities.GlobalConfig, v string) error {
		cfg.SlideDividers = splitCommandList(v)
		return nil
	}},
}

// errUnknownBool marks a boolean command whose value token is outside the
// accepted set. The field stays false and a diagnostic is recorded; the
// command itself is never an error.
type errUnknownBool struct{ token string }

func (e errUnknownBool) Error() string {
	return fmt.Sprintf("unrecognized boolean value %q, using false", e.token)
}

func applyBool(dst *bool, value string) error {
	b, ok := entities.ParseBool(value)
	*dst = b
	if !ok {
		return errUnknownBool{token: strings.TrimSpace(value)}
	}
	return nil
}

// splitCommandList splits a comma-list command value, trimming whitespace
// and dropping empty entries.
func splitCommandList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseGlobalCommands scans the full markdown text for presentation-wide
// key: value commands and returns the resulting config. A malformed value
// never aborts parsing of the other commands; the affected field keeps its
// default and a diagnostic is recorded.
func ParseGlobalCommands(markdown string) (entities.GlobalConfig, []entities.Diagnostic) {
	cfg := entities.DefaultGlobalConfig()
	var diags []entities.Diagnostic

	for _, cmd := range globalCommands {
		m := cmd.re.FindStringSubmatch(markdown)
		if m == nil {
			continue
		}
		if err := cmd.apply(&cfg, m[1]); err != nil {
			diags = append(diags, entities.Diagnostic{
				Component: "global-config",
				Message:   fmt.Sprintf("command %q: %v", cmd.name, err),
			})
		}
	}

	return cfg, diags
}
