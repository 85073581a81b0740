package ports

import "context"

// PresentationSource is one discovered markdown presentation.
type PresentationSource struct {
	// Path is the markdown file path
	Path string

	// Slug is the presentation folder name, used for output and web paths
	Slug string
}

// SourceScanner discovers presentation sources under a root directory.
type SourceScanner interface {
	Scan(ctx context.Context, root string) ([]PresentationSource, error)
}

// SiteWriter persists generated pages and copies referenced assets into the
// output tree.
type SiteWriter interface {
	WritePage(ctx context.Context, relPath string, content []byte) error
	CopyAsset(ctx context.Context, sourcePath, relPath string) error
}
