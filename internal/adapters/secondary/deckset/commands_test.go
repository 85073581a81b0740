package deckset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlideCommands(t *testing.T) {
	t.Run("zero value when no directives present", func(t *testing.T) {
		o := ParseSlideCommands("# Plain slide\n\nbody")
		assert.False(t, o.HasColumns)
		assert.False(t, o.HideFooter)
		assert.False(t, o.HideSlideNumbers)
		assert.Empty(t, o.BackgroundImage)
		assert.Nil(t, o.Autoscale)
		assert.Empty(t, o.Transition)
	})

	t.Run("all directives", func(t *testing.T) {
		text := `[.background-image: hero.jpg]
[.hide-footer]
[.hide-slide-numbers]
[.autoscale: true]
[.slide-transition: push]

# Slide`

		o := ParseSlideCommands(text)
		assert.Equal(t, "hero.jpg", o.BackgroundImage)
		assert.True(t, o.HideFooter)
		assert.True(t, o.HideSlideNumbers)
		require.NotNil(t, o.Autoscale)
		assert.True(t, *o.Autoscale)
		assert.Equal(t, "push", o.Transition)
	})

	t.Run("column markers set the flag", func(t *testing.T) {
		o := ParseSlideCommands("[.column]\nleft\n[.column]\nright")
		assert.True(t, o.HasColumns)
	})

	t.Run("directives are case-insensitive", func(t *testing.T) {
		o := ParseSlideCommands("[.Hide-Footer]\n[.AUTOSCALE: false]")
		assert.True(t, o.HideFooter)
		require.NotNil(t, o.Autoscale)
		assert.False(t, *o.Autoscale)
	})

	t.Run("unrecognized autoscale token coerces to false", func(t *testing.T) {
		o := ParseSlideCommands("[.autoscale: maybe]")
		require.NotNil(t, o.Autoscale)
		assert.False(t, *o.Autoscale)
	})

	t.Run("first directive occurrence wins", func(t *testing.T) {
		o := ParseSlideCommands("[.slide-transition: fade]\n[.slide-transition: push]")
		assert.Equal(t, "fade", o.Transition)
	})
}

func TestStripSlideCommands(t *testing.T) {
	t.Run("removes every directive occurrence", func(t *testing.T) {
		text := "[.background-image: a.jpg]\n[.hide-footer]\n[.autoscale: true]\n[.slide-transition: fade]\n# Slide"
		out := StripSlideCommands(text)
		assert.NotContains(t, out, "[.background-image")
		assert.NotContains(t, out, "[.hide-footer]")
		assert.NotContains(t, out, "[.autoscale")
		assert.NotContains(t, out, "[.slide-transition")
		assert.Contains(t, out, "# Slide")
	})

	t.Run("column markers survive for the column splitter", func(t *testing.T) {
		out := StripSlideCommands("[.column]\nleft\n[.column]\nright")
		assert.Contains(t, out, "[.column]")
	})
}
