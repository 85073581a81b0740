package ports

import (
	"context"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// SiteRenderer turns a resolved presentation into a self-contained HTML
// page. The renderer must honor the slide-over-global precedence rule for
// autoscale, footer visibility, slide numbers, and transition.
type SiteRenderer interface {
	RenderPresentation(ctx context.Context, presentation *entities.Presentation) ([]byte, error)
	RenderIndex(ctx context.Context, presentations []*entities.Presentation) ([]byte, error)
}
