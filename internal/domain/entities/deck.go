package entities

import "strings"

// GlobalConfig holds the presentation-wide Deckset settings parsed from the
// markdown preamble. It is created once per presentation and never modified
// after parsing; every slide consults it through its override.
type GlobalConfig struct {
	// Theme is the visual theme name
	Theme string `json:"theme"`

	// Autoscale shrinks oversized slide content when true
	Autoscale bool `json:"autoscale"`

	// SlideNumbers toggles the slide-number indicator
	SlideNumbers bool `json:"slideNumbers"`

	// SlideCount toggles the total-count part of the indicator
	SlideCount bool `json:"slideCount"`

	// Footer is rendered at the bottom of every slide
	Footer string `json:"footer,omitempty"`

	// BackgroundImage is the default background for every slide
	BackgroundImage string `json:"backgroundImage,omitempty"`

	// BuildLists reveals list items incrementally when true
	BuildLists bool `json:"buildLists"`

	// SlideTransition names the transition between slides
	SlideTransition string `json:"slideTransition,omitempty"`

	// CodeLanguage is the default language for untagged fenced blocks
	CodeLanguage string `json:"codeLanguage,omitempty"`

	// FitHeaders lists the heading markers (e.g. "#", "##") that are
	// scaled to fill the slide width
	FitHeaders []string `json:"fitHeaders,omitempty"`

	// SlideDividers lists the heading markers that start a new slide
	SlideDividers []string `json:"slideDividers,omitempty"`
}

// DefaultGlobalConfig returns the config used when the preamble sets nothing.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Theme: "default"}
}

// SlideOverride holds per-slide directive overrides. A zero value means no
// directive was present; unset fields fall through to the global config.
type SlideOverride struct {
	// HasColumns is set by the presence of at least one [.column] marker
	HasColumns bool `json:"hasColumns"`

	// BackgroundImage overrides the global background for this slide
	BackgroundImage string `json:"backgroundImage,omitempty"`

	// HideFooter suppresses the footer on this slide
	HideFooter bool `json:"hideFooter"`

	// HideSlideNumbers suppresses the slide number on this slide
	HideSlideNumbers bool `json:"hideSlideNumbers"`

	// Autoscale is tri-state: nil means not specified
	Autoscale *bool `json:"autoscale,omitempty"`

	// Transition overrides the global slide transition
	Transition string `json:"transition,omitempty"`
}

// EffectiveAutoscale resolves the autoscale precedence rule: the slide
// directive wins over the global setting when present.
func (o SlideOverride) EffectiveAutoscale(cfg GlobalConfig) bool {
	if o.Autoscale != nil {
		return *o.Autoscale
	}
	return cfg.Autoscale
}

// EffectiveTransition resolves the transition precedence rule.
func (o SlideOverride) EffectiveTransition(cfg GlobalConfig) string {
	if o.Transition != "" {
		return o.Transition
	}
	return cfg.SlideTransition
}

// ShowFooter reports whether the footer is visible on this slide.
func (o SlideOverride) ShowFooter(cfg GlobalConfig) bool {
	return cfg.Footer != "" && !o.HideFooter
}

// ShowSlideNumbers reports whether the slide number is visible on this slide.
func (o SlideOverride) ShowSlideNumbers(cfg GlobalConfig) bool {
	return cfg.SlideNumbers && !o.HideSlideNumbers
}

// Diagnostic records a non-fatal parsing problem. The core pipeline never
// logs; it accumulates diagnostics and lets the caller decide what to print.
type Diagnostic struct {
	Component string `json:"component"`
	Message   string `json:"message"`
}

func (d Diagnostic) String() string {
	return d.Component + ": " + d.Message
}

// ParseBool interprets a Deckset boolean command value. The accepted token
// set is {true,false,yes,no,on,off,1,0}, case-insensitive. The second return
// reports whether the token was recognized; callers treat unrecognized
// tokens as false plus a diagnostic, not as an error.
func ParseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}
