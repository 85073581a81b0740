package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	trueTokens := []string{"true", "yes", "on", "1", "TRUE", "Yes", " on "}
	for _, tok := range trueTokens {
		v, ok := ParseBool(tok)
		assert.True(t, ok, "token %q should be recognized", tok)
		assert.True(t, v, "token %q should be true", tok)
	}

	falseTokens := []string{"false", "no", "off", "0", "FALSE", "No"}
	for _, tok := range falseTokens {
		v, ok := ParseBool(tok)
		assert.True(t, ok, "token %q should be recognized", tok)
		assert.False(t, v, "token %q should be false", tok)
	}

	unknownTokens := []string{"", "maybe", "2", "yess"}
	for _, tok := range unknownTokens {
		v, ok := ParseBool(tok)
		assert.False(t, ok, "token %q should not be recognized", tok)
		assert.False(t, v, "unrecognized token %q coerces to false", tok)
	}
}

func TestSlideOverride_Precedence(t *testing.T) {
	cfg := GlobalConfig{
		Autoscale:       true,
		SlideTransition: "fade",
		Footer:          "ACME",
		SlideNumbers:    true,
	}

	t.Run("zero override falls through to globals", func(t *testing.T) {
		var o SlideOverride
		assert.True(t, o.EffectiveAutoscale(cfg))
		assert.Equal(t, "fade", o.EffectiveTransition(cfg))
		assert.True(t, o.ShowFooter(cfg))
		assert.True(t, o.ShowSlideNumbers(cfg))
	})

	t.Run("slide directives win", func(t *testing.T) {
		off := false
		o := SlideOverride{
			Autoscale:        &off,
			Transition:       "push",
			HideFooter:       true,
			HideSlideNumbers: true,
		}
		assert.False(t, o.EffectiveAutoscale(cfg))
		assert.Equal(t, "push", o.EffectiveTransition(cfg))
		assert.False(t, o.ShowFooter(cfg))
		assert.False(t, o.ShowSlideNumbers(cfg))
	})

	t.Run("explicit false differs from unset", func(t *testing.T) {
		off := false
		withDirective := SlideOverride{Autoscale: &off}
		withoutDirective := SlideOverride{}
		assert.False(t, withDirective.EffectiveAutoscale(cfg))
		assert.True(t, withoutDirective.EffectiveAutoscale(cfg))
	})

	t.Run("no footer text means no footer regardless of directives", func(t *testing.T) {
		var o SlideOverride
		assert.False(t, o.ShowFooter(GlobalConfig{}))
	})
}

func TestDefaultGlobalConfig(t *testing.T) {
	cfg := DefaultGlobalConfig()
	assert.Equal(t, "default", cfg.Theme)
	assert.False(t, cfg.Autoscale)
	assert.False(t, cfg.SlideNumbers)
	assert.Empty(t, cfg.Footer)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Component: "media", Message: "broken reference"}
	assert.Equal(t, "media: broken reference", d.String())
}
