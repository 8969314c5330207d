package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/appointment"
	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
	"github.com/BruksfildServices01/venue-site/internal/timezone"
	"github.com/BruksfildServices01/venue-site/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Name  string
	Email string
	Date  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment is the public booking. New bookings always start
// pending regardless of what the caller sends.
type CreateAppointment struct {
	repo domain.Repository
	loc  *time.Location
}

func NewCreateAppointment(repo domain.Repository, loc *time.Location) *CreateAppointment {
	return &CreateAppointment{repo: repo, loc: loc}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		Name:   strings.TrimSpace(in.Name),
		Email:  validators.NormalizeEmail(in.Email),
		Notes:  strings.TrimSpace(in.Notes),
		Status: string(domain.InitialStatus()),
	}

	if err := setDate(ap, in.Date, uc.loc); err != nil {
		return nil, err
	}

	if err := validators.Struct(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}

// setDate leaves an empty value for struct validation to report.
func setDate(ap *models.Appointment, raw string, loc *time.Location) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		ap.Date = time.Time{}
		return nil
	}

	d, err := timezone.ParseVenueTime(raw, loc)
	if err != nil {
		return httperr.Invalid("date", "Please provide a valid date for the appointment")
	}
	ap.Date = d
	return nil
}
