package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentation_Validate(t *testing.T) {
	t.Run("slug is required", func(t *testing.T) {
		p := Presentation{}
		assert.Error(t, p.Validate())
	})

	t.Run("zero slides is valid", func(t *testing.T) {
		p := Presentation{Slug: "empty-deck"}
		assert.NoError(t, p.Validate())
	})

	t.Run("invalid slide fails validation", func(t *testing.T) {
		p := Presentation{Slug: "deck", Slides: []Slide{{Index: 0}}}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slide 1")
	})
}

func TestPresentation_GetSlideByIndex(t *testing.T) {
	p := Presentation{
		Slug:   "deck",
		Slides: []Slide{{Index: 1, Content: "a"}, {Index: 2, Content: "b"}},
	}

	slide, err := p.GetSlideByIndex(2)
	require.NoError(t, err)
	assert.Equal(t, "b", slide.Content)

	_, err = p.GetSlideByIndex(0)
	assert.Error(t, err)

	_, err = p.GetSlideByIndex(3)
	assert.Error(t, err)
}

func TestPresentation_DegradedCount(t *testing.T) {
	p := Presentation{
		Slug: "deck",
		Slides: []Slide{
			{Index: 1},
			PlaceholderSlide(2, "raw"),
			{Index: 3},
			PlaceholderSlide(4, "raw"),
		},
	}
	assert.Equal(t, 2, p.DegradedCount())
	assert.Equal(t, 4, p.SlideCount())
}
