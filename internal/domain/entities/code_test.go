package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightSpec_Contains(t *testing.T) {
	t.Run("none contains nothing", func(t *testing.T) {
		spec := NoHighlight()
		assert.False(t, spec.Contains(1))
		assert.False(t, spec.Contains(100))
	})

	t.Run("all contains everything", func(t *testing.T) {
		spec := HighlightSpec{Mode: HighlightAll}
		assert.True(t, spec.Contains(1))
		assert.True(t, spec.Contains(9999))
	})

	t.Run("lines contain only the set", func(t *testing.T) {
		spec := HighlightSpec{Mode: HighlightLines, Lines: map[int]bool{2: true, 4: true}}
		assert.False(t, spec.Contains(1))
		assert.True(t, spec.Contains(2))
		assert.False(t, spec.Contains(3))
		assert.True(t, spec.Contains(4))
	})
}

func TestHighlightSpec_String(t *testing.T) {
	tests := []struct {
		name string
		spec HighlightSpec
		want string
	}{
		{name: "none", spec: NoHighlight(), want: "none"},
		{name: "all", spec: HighlightSpec{Mode: HighlightAll}, want: "all"},
		{name: "empty line set", spec: HighlightSpec{Mode: HighlightLines}, want: "none"},
		{
			name: "single line",
			spec: HighlightSpec{Mode: HighlightLines, Lines: map[int]bool{3: true}},
			want: "3",
		},
		{
			name: "contiguous run compacts to a range",
			spec: HighlightSpec{Mode: HighlightLines, Lines: map[int]bool{1: true, 2: true, 3: true}},
			want: "1-3",
		},
		{
			name: "mixed runs and singles",
			spec: HighlightSpec{Mode: HighlightLines, Lines: map[int]bool{1: true, 2: true, 3: true, 5: true, 6: true, 8: true}},
			want: "1-3,5-6,8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.String())
		})
	}
}

func TestCodeBlock_LineCount(t *testing.T) {
	assert.Equal(t, 0, CodeBlock{}.LineCount())
	assert.Equal(t, 1, CodeBlock{Source: "one"}.LineCount())
	assert.Equal(t, 3, CodeBlock{Source: "a\nb\nc"}.LineCount())
}
