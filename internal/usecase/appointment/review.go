package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/appointment"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

type ReviewAppointment struct {
	repo domain.Repository
}

func NewReviewAppointment(repo domain.Repository) *ReviewAppointment {
	return &ReviewAppointment{repo: repo}
}

func (uc *ReviewAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
	decision domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Review(ap, decision); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}
