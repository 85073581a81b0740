package deckset

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// MediaResolver recognizes image/video/audio references in slide text and
// builds placement, scaling, and playback metadata from the modifier
// mini-language in the alt position. Web paths are derived purely from
// strings; this component never touches the filesystem.
type MediaResolver struct {
	slug string
}

// NewMediaResolver creates a resolver for one presentation. slug is the
// presentation folder name used in web paths.
func NewMediaResolver(slug string) *MediaResolver {
	return &MediaResolver{slug: slug}
}

// ResolvedMedia pairs a resolved reference with the literal markdown text
// it came from, so the assembler can remove it from the visible content.
type ResolvedMedia struct {
	Ref     entities.MediaReference
	Literal string
}

// ResolveAll finds every media reference in the slide text in document
// order. A malformed reference (an unterminated "![" construct) yields a
// MediaError in the diagnostics and is skipped; it never blocks the others.
func (r *MediaResolver) ResolveAll(slideText string) ([]ResolvedMedia, []entities.Diagnostic) {
	var (
		resolved []ResolvedMedia
		diags    []entities.Diagnostic
	)

	matches := mediaRefRe.FindAllStringSubmatch(slideText, -1)
	for _, m := range matches {
		ref, err := r.Resolve(m[1], m[2])
		if err != nil {
			diags = append(diags, entities.Diagnostic{
				Component: "media",
				Message:   err.Error(),
			})
			continue
		}
		resolved = append(resolved, ResolvedMedia{Ref: ref, Literal: m[0]})
	}

	// Anything that still looks like the start of a media reference after
	// removing well-formed ones is a broken alt/path pair.
	leftover := mediaRefRe.ReplaceAllString(slideText, "")
	if idx := strings.Index(leftover, "!["); idx >= 0 {
		end := idx + 40
		if end > len(leftover) {
			end = len(leftover)
		}
		diags = append(diags, entities.Diagnostic{
			Component: "media",
			Message: (&entities.MediaError{
				Path: strings.TrimSpace(leftover[idx:end]),
				Kind: entities.MediaImage,
			}).Error(),
		})
	}

	return resolved, diags
}

// Resolve builds a single MediaReference from modifier text and a path.
func (r *MediaResolver) Resolve(modifierText, rawPath string) (entities.MediaReference, error) {
	rawPath = strings.TrimSpace(rawPath)
	if rawPath == "" {
		return entities.MediaReference{}, &entities.MediaError{Path: rawPath, Kind: entities.MediaImage}
	}

	kind, embed, embedURL := classifyPath(rawPath)

	ref := entities.MediaReference{
		Kind:       kind,
		RawPath:    rawPath,
		SourcePath: rawPath,
		Modifiers:  parseModifiers(modifierText, kind),
		Embed:      embed,
		EmbedURL:   embedURL,
	}

	if embed != entities.EmbedExternal && !isRemotePath(rawPath) {
		ref.WebPath = r.webPath(rawPath)
	} else if isRemotePath(rawPath) && embed != entities.EmbedExternal {
		// externally hosted plain file: served from its own URL
		ref.WebPath = rawPath
	}

	return ref, nil
}

// webPath derives the servable path: slides/<slug>/<relative-path>.
func (r *MediaResolver) webPath(rawPath string) string {
	clean := strings.TrimPrefix(rawPath, "./")
	return path.Join("slides", r.slug, clean)
}

// classifyPath decides image vs. video vs. audio and, for videos, whether
// the reference embeds an external platform player.
func classifyPath(rawPath string) (entities.MediaKind, entities.EmbedType, string) {
	if id, ok := hostedVideoID(rawPath); ok {
		return entities.MediaVideo, entities.EmbedExternal,
			fmt.Sprintf("https://www.youtube.com/embed/%s", id)
	}

	ext := strings.ToLower(path.Ext(stripQuery(rawPath)))
	switch {
	case videoExtensions[ext]:
		return entities.MediaVideo, entities.EmbedLocal, ""
	case audioExtensions[ext]:
		return entities.MediaAudio, entities.EmbedLocal, ""
	default:
		return entities.MediaImage, entities.EmbedLocal, ""
	}
}

// hostedVideoID tries the full-URL pattern, then the short-link pattern.
// The first capturing match wins.
func hostedVideoID(rawPath string) (string, bool) {
	if m := youtubeWatchRe.FindStringSubmatch(rawPath); m != nil {
		return m[1], true
	}
	if m := youtubeShortRe.FindStringSubmatch(rawPath); m != nil {
		return m[1], true
	}
	return "", false
}

func isRemotePath(rawPath string) bool {
	lower := strings.ToLower(rawPath)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func stripQuery(rawPath string) string {
	if idx := strings.IndexAny(rawPath, "?#"); idx >= 0 {
		return rawPath[:idx]
	}
	return rawPath
}

// parseModifiers interprets the free-text modifier string. Unknown tokens
// are ignored so new Deckset modifiers do not break old decks.
//
// An image with empty modifier text is a full-slide background; this is the
// documented Deckset convention, not a fallback.
func parseModifiers(text string, kind entities.MediaKind) entities.MediaModifiers {
	mods := entities.MediaModifiers{}
	lower := strings.ToLower(text)

	if kind == entities.MediaImage {
		mods.Placement = entities.PlacementBackground
		mods.Scaling = entities.ScalingCover
	} else {
		mods.Placement = entities.PlacementInline
		mods.Scaling = entities.ScalingFit
	}

	if containsWord(lower, "inline") {
		mods.Placement = entities.PlacementInline
		if kind == entities.MediaImage {
			mods.Scaling = entities.ScalingFit
		}
	}
	if containsWord(lower, "left") {
		mods.Placement = entities.PlacementLeft
	}
	if containsWord(lower, "right") {
		mods.Placement = entities.PlacementRight
	}
	if kind != entities.MediaImage && containsWord(lower, "background") {
		mods.Placement = entities.PlacementBackground
	}

	// keyword scaling checked in fixed priority order; last match wins
	for _, kw := range []string{entities.ScalingFit, entities.ScalingFill, entities.ScalingOriginal} {
		if containsWord(lower, kw) {
			mods.Scaling = kw
		}
	}
	// a trailing percentage overrides keyword scaling
	if m := percentTokenRe.FindStringSubmatch(strings.TrimSpace(lower)); m != nil {
		mods.Scaling = m[1] + "%"
	}

	if kind == entities.MediaImage {
		if containsWord(lower, "filtered") {
			mods.Filtered = true
		}
		if m := cornerRadiusRe.FindStringSubmatch(text); m != nil {
			// digits guaranteed by the pattern
			radius, _ := strconv.Atoi(m[1])
			mods.CornerRadius = radius
		}
	} else {
		mods.Autoplay = containsWord(lower, "autoplay")
		mods.Loop = containsWord(lower, "loop")
		mods.Mute = containsWord(lower, "mute")
		mods.Hidden = containsWord(lower, "hide")
	}

	return mods
}

// containsWord matches a token anywhere in the modifier text without
// matching inside longer words ("fit" must not match "filtered").
func containsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
