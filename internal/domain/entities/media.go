package entities

import (
	"fmt"
	"sort"
)

// MediaKind classifies a markdown media reference by its target.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// Placement positions a media element on the slide.
type Placement string

const (
	PlacementBackground Placement = "background"
	PlacementInline     Placement = "inline"
	PlacementLeft       Placement = "left"
	PlacementRight      Placement = "right"
)

// Scaling values; a percentage such as "45%" is also valid.
const (
	ScalingFit      = "fit"
	ScalingFill     = "fill"
	ScalingOriginal = "original"
	ScalingCover    = "cover"
)

// EmbedType distinguishes local media files from externally hosted,
// iframe-embeddable platform videos.
type EmbedType string

const (
	EmbedLocal    EmbedType = "local"
	EmbedExternal EmbedType = "external"
)

// MediaModifiers is the parsed form of the free-text modifier string in a
// media reference's alt position. Unknown tokens are ignored while parsing,
// so the zero value only appears for empty modifier text.
type MediaModifiers struct {
	Placement Placement `json:"placement"`
	Scaling   string    `json:"scaling"`

	// Image-only
	Filtered     bool `json:"filtered,omitempty"`
	CornerRadius int  `json:"cornerRadius,omitempty"`

	// Video/audio-only playback flags
	Autoplay bool `json:"autoplay,omitempty"`
	Loop     bool `json:"loop,omitempty"`
	Mute     bool `json:"mute,omitempty"`
	Hidden   bool `json:"hidden,omitempty"`
}

// MediaReference is a fully resolved media element on a slide.
type MediaReference struct {
	Kind MediaKind `json:"kind"`

	// RawPath is the path exactly as written in the markdown
	RawPath string `json:"rawPath"`

	// SourcePath is the filesystem path relative to the presentation folder
	SourcePath string `json:"sourcePath"`

	// WebPath is the servable path (slides/<slug>/<relative-path>);
	// empty for external embeds
	WebPath string `json:"webPath,omitempty"`

	Modifiers MediaModifiers `json:"modifiers"`

	// Embed classification applies to videos only
	Embed    EmbedType `json:"embed,omitempty"`
	EmbedURL string    `json:"embedUrl,omitempty"`
}

// IsBackground reports whether the element covers the whole slide.
func (m MediaReference) IsBackground() bool {
	return m.Modifiers.Placement == PlacementBackground
}

// GridImage is an image with its zero-based position in an image grid.
type GridImage struct {
	MediaReference
	Row int `json:"row"`
	Col int `json:"col"`
}

// ImageGrid lays out consecutive inline images on one slide. Columns is 1
// for a single image, 2 for two to four, and 3 for five or more.
type ImageGrid struct {
	Images  []GridImage `json:"images"`
	Columns int         `json:"columns"`
}

// GridColumns returns the column count for n consecutive inline images.
func GridColumns(n int) int {
	switch {
	case n <= 1:
		return 1
	case n <= 4:
		return 2
	default:
		return 3
	}
}

// BuildImageGrid arranges inline images row-major in encounter order.
func BuildImageGrid(images []MediaReference) ImageGrid {
	cols := GridColumns(len(images))
	grid := ImageGrid{Columns: cols, Images: make([]GridImage, 0, len(images))}
	for i, img := range images {
		grid.Images = append(grid.Images, GridImage{
			MediaReference: img,
			Row:            i / cols,
			Col:            i % cols,
		})
	}
	return grid
}

// MediaError reports a malformed media reference. It carries the offending
// path and the media kind so the assembler can skip just that reference.
type MediaError struct {
	Path string
	Kind MediaKind
	Err  error
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("media reference %q (%s): %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("malformed media reference %q (%s)", e.Path, e.Kind)
}

func (e *MediaError) Unwrap() error { return e.Err }

// SortGridByPosition orders grid images by (row, col). Grids are built in
// row-major order already; this exists for callers that reshuffle.
func SortGridByPosition(images []GridImage) {
	sort.Slice(images, func(i, j int) bool {
		if images[i].Row != images[j].Row {
			return images[i].Row < images[j].Row
		}
		return images[i].Col < images[j].Col
	})
}
