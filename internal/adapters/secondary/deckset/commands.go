package deckset

import (
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// ParseSlideCommands extracts the per-slide bracket directives from one
// slide's text. Each directive is optional and scanned independently; only
// the first occurrence of a directive counts, and a directive that fails to
// parse leaves its field at the default without blocking the others.
func ParseSlideCommands(slideText string) entities.SlideOverride {
	var o entities.SlideOverride

	o.HasColumns = columnMarkerRe.MatchString(slideText)
	o.HideFooter = hideFooterRe.MatchString(slideText)
	o.HideSlideNumbers = hideNumbersRe.MatchString(slideText)

	if m := slideBackgroundRe.FindStringSubmatch(slideText); m != nil {
		o.BackgroundImage = strings.TrimSpace(m[1])
	}
	if m := slideAutoscaleRe.FindStringSubmatch(slideText); m != nil {
		if b, ok := entities.ParseBool(m[1]); ok {
			o.Autoscale = &b
		} else {
			// unrecognized token coerces to false, same as the
			// global autoscale command
			f := false
			o.Autoscale = &f
		}
	}
	if m := slideTransitionRe.FindStringSubmatch(slideText); m != nil {
		o.Transition = strings.TrimSpace(m[1])
	}

	return o
}

// StripSlideCommands removes every slide directive occurrence from the text
// so directives never show up in rendered content. Column markers stay; the
// column splitter consumes them itself.
func StripSlideCommands(slideText string) string {
	out := slideBackgroundRe.ReplaceAllString(slideText, "")
	out = hideFooterRe.ReplaceAllString(out, "")
	out = hideNumbersRe.ReplaceAllString(out, "")
	out = slideAutoscaleRe.ReplaceAllString(out, "")
	out = slideTransitionRe.ReplaceAllString(out, "")
	return out
}
