package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/models"
)

type Repository interface {
	// ListByDateDesc returns every appointment, newest date first.
	ListByDateDesc(ctx context.Context) ([]models.Appointment, error)

	Get(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
