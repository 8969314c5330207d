package hallofshame

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/models"
)

type Repository interface {
	// ListByDateDesc returns entries newest first. An empty gameKey
	// returns every game.
	ListByDateDesc(ctx context.Context, gameKey string) ([]models.HallOfShameEntry, error)

	Get(ctx context.Context, id uuid.UUID) (*models.HallOfShameEntry, error)
	Create(ctx context.Context, e *models.HallOfShameEntry) error
	Update(ctx context.Context, e *models.HallOfShameEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
