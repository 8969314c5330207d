package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/appointment"
	"github.com/BruksfildServices01/venue-site/internal/models"
	"github.com/BruksfildServices01/venue-site/internal/validators"
)

// UpdateAppointmentInput is a partial document; nil fields are kept.
type UpdateAppointmentInput struct {
	Name   *string
	Email  *string
	Date   *string
	Status *string
	Notes  *string
}

type UpdateAppointment struct {
	repo domain.Repository
	loc  *time.Location
}

func NewUpdateAppointment(repo domain.Repository, loc *time.Location) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, loc: loc}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		ap.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		ap.Email = validators.NormalizeEmail(*in.Email)
	}
	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Date != nil {
		if err := setDate(ap, *in.Date, uc.loc); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if err := domain.SetStatus(ap, domain.Status(*in.Status)); err != nil {
			return nil, err
		}
	}

	// the merged document is validated as a whole
	if err := validators.Struct(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}
