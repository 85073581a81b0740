package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fredcamaral/decksite/internal/domain/entities"
	"github.com/fredcamaral/decksite/internal/domain/ports"
)

// Generator implements the static-site build: scan sources, run each
// through the parsing core, render, and write the output tree.
type Generator struct {
	scanner      ports.SourceScanner
	parser       ports.DeckParser
	renderer     ports.SiteRenderer
	writer       ports.SiteWriter
	copyAssets   bool
	defaultTheme string
}

// NewGenerator creates a new build orchestrator. defaultTheme applies to
// presentations that carry no theme command of their own.
func NewGenerator(
	scanner ports.SourceScanner,
	parser ports.DeckParser,
	renderer ports.SiteRenderer,
	writer ports.SiteWriter,
	copyAssets bool,
	defaultTheme string,
) *Generator {
	return &Generator{
		scanner:      scanner,
		parser:       parser,
		renderer:     renderer,
		writer:       writer,
		copyAssets:   copyAssets,
		defaultTheme: defaultTheme,
	}
}

// BuildResult summarizes one site build.
type BuildResult struct {
	Presentations []*entities.Presentation
	Failed        int
}

// Build generates the whole site under root. A failing presentation is
// logged and skipped, mirroring the per-slide degradation inside the core;
// Build errors only when nothing could be produced at all.
func (g *Generator) Build(ctx context.Context, root string) (*BuildResult, error) {
	sources, err := g.scanner.Scan(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no presentations found under %s", root)
	}

	result := &BuildResult{}
	for _, src := range sources {
		presentation, err := g.buildOne(ctx, src)
		if err != nil {
			log.Printf("[WARN] [generator] skipping %s: %v", src.Path, err)
			result.Failed++
			continue
		}
		result.Presentations = append(result.Presentations, presentation)
	}

	if len(result.Presentations) == 0 {
		return nil, errors.New("every presentation failed to build")
	}

	indexHTML, err := g.renderer.RenderIndex(ctx, result.Presentations)
	if err != nil {
		return nil, fmt.Errorf("rendering site index: %w", err)
	}
	if err := g.writer.WritePage(ctx, "index.html", indexHTML); err != nil {
		return nil, fmt.Errorf("writing site index: %w", err)
	}

	return result, nil
}

// buildOne processes a single presentation end to end.
func (g *Generator) buildOne(ctx context.Context, src ports.PresentationSource) (*entities.Presentation, error) {
	content, err := os.ReadFile(src.Path) // #nosec G304 - path comes from the scanner
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	presentation, err := g.parser.Process(ctx, string(content), src.Slug)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	presentation.ID = uuid.NewString()
	if g.defaultTheme != "" && presentation.Config.Theme == entities.DefaultGlobalConfig().Theme {
		presentation.Config.Theme = g.defaultTheme
	}

	for _, d := range presentation.Diagnostics {
		log.Printf("[INFO] [generator] %s: %s", src.Slug, d)
	}
	if n := presentation.DegradedCount(); n > 0 {
		log.Printf("[WARN] [generator] %s: %d slide(s) degraded to raw content", src.Slug, n)
	}

	page, err := g.renderer.RenderPresentation(ctx, presentation)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}
	pagePath := path.Join("slides", src.Slug, "index.html")
	if err := g.writer.WritePage(ctx, pagePath, page); err != nil {
		return nil, fmt.Errorf("writing page: %w", err)
	}

	if g.copyAssets {
		g.copyPresentationAssets(ctx, src, presentation)
	}

	return presentation, nil
}

// copyPresentationAssets mirrors each slide's local media into the output
// tree at its derived web path. Missing assets are logged, not fatal.
func (g *Generator) copyPresentationAssets(ctx context.Context, src ports.PresentationSource, presentation *entities.Presentation) {
	baseDir := filepath.Dir(src.Path)

	copyRef := func(ref *entities.MediaReference) {
		if ref == nil || ref.Embed == entities.EmbedExternal || ref.WebPath == "" {
			return
		}
		if ref.WebPath == ref.RawPath {
			// externally hosted plain file, nothing to copy
			return
		}
		sourcePath := filepath.Join(baseDir, filepath.FromSlash(ref.SourcePath))
		if err := g.writer.CopyAsset(ctx, sourcePath, ref.WebPath); err != nil {
			log.Printf("[WARN] [generator] %s: copying %s: %v", src.Slug, ref.SourcePath, err)
		}
	}

	for i := range presentation.Slides {
		slide := &presentation.Slides[i]
		copyRef(slide.Background)
		for j := range slide.Grid.Images {
			copyRef(&slide.Grid.Images[j].MediaReference)
		}
		for j := range slide.Videos {
			copyRef(&slide.Videos[j])
		}
		for j := range slide.Audio {
			copyRef(&slide.Audio[j])
		}
	}
}
