package game

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/models"
)

type Repository interface {
	// ListByName returns every game sorted by name ascending.
	ListByName(ctx context.Context) ([]models.Game, error)

	Create(ctx context.Context, g *models.Game) error
	Delete(ctx context.Context, id uuid.UUID) error
}
