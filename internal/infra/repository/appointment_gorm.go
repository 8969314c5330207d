package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) ListByDateDesc(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) Get(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, httperr.FromStore(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return httperr.FromStore(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return updateRow(ctx, r.db, ap)
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Appointment](ctx, r.db, id)
}
