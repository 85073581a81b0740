package ports

import (
	"context"

	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// DeckParser is the boundary of the parsing core: one decoded presentation
// source plus its folder slug in, one resolved presentation out.
type DeckParser interface {
	Process(ctx context.Context, source, slug string) (*entities.Presentation, error)
}
