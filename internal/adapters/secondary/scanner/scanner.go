// Package scanner discovers presentation sources and manages the output
// tree. Everything here is mechanical I/O; the parsing core never touches
// the filesystem.
package scanner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fredcamaral/decksite/internal/domain/ports"
)

// SourceScanner finds markdown presentations under a root directory.
type SourceScanner struct {
	outputDir string
}

// NewSourceScanner creates a scanner that skips the given output directory.
func NewSourceScanner(outputDir string) *SourceScanner {
	return &SourceScanner{outputDir: outputDir}
}

// Scan walks root for *.md files. Each file is one presentation; its parent
// folder name becomes the slug (the file basename when the parent is the
// root itself). Dotfiles and the output directory are skipped.
func (s *SourceScanner) Scan(ctx context.Context, root string) ([]ports.PresentationSource, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	var sources []ports.PresentationSource
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		name := d.Name()
		if d.IsDir() {
			if path != absRoot && (strings.HasPrefix(name, ".") || name == s.outputDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}

		sources = append(sources, ports.PresentationSource{
			Path: path,
			Slug: slugFor(absRoot, path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Slug < sources[j].Slug })
	return sources, nil
}

// slugFor derives the presentation slug: the parent folder name, or the
// file basename without extension when the file sits in the root.
func slugFor(root, path string) string {
	dir := filepath.Dir(path)
	if dir == root {
		base := filepath.Base(path)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Base(dir)
}

// SiteWriter writes generated pages and copies assets under one output
// directory.
type SiteWriter struct {
	outputDir string
}

// NewSiteWriter creates a writer rooted at outputDir.
func NewSiteWriter(outputDir string) *SiteWriter {
	return &SiteWriter{outputDir: outputDir}
}

// WritePage writes one generated page at its site-relative path.
func (w *SiteWriter) WritePage(ctx context.Context, relPath string, content []byte) error {
	target := filepath.Join(w.outputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(target, content, 0644); err != nil { // #nosec G306 - generated site content is world-readable
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	return nil
}

// CopyAsset copies a referenced media file to its site-relative path.
func (w *SiteWriter) CopyAsset(ctx context.Context, sourcePath, relPath string) error {
	src, err := os.Open(sourcePath) // #nosec G304 - asset paths come from scanned presentations
	if err != nil {
		return fmt.Errorf("opening asset: %w", err)
	}
	defer func() { _ = src.Close() }()

	target := filepath.Join(w.outputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("creating asset directory: %w", err)
	}

	dst, err := os.Create(target) // #nosec G304 - target is inside the output directory
	if err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copying asset %s: %w", relPath, err)
	}
	return nil
}

// Ensure interfaces are satisfied
var (
	_ ports.SourceScanner = (*SourceScanner)(nil)
	_ ports.SiteWriter    = (*SiteWriter)(nil)
)
