package ports

import (
	"context"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// ConfigLoader loads site-level configuration with local overrides.
type ConfigLoader interface {
	// LoadGlobal loads the user-wide configuration, creating defaults on
	// first run
	LoadGlobal(ctx context.Context) (*entities.Config, error)
	// LoadLocal loads the per-project decksite.toml, if present
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)
}
