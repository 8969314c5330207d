package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

type HallOfShameGormRepository struct {
	db *gorm.DB
}

func NewHallOfShameGormRepository(db *gorm.DB) *HallOfShameGormRepository {
	return &HallOfShameGormRepository{db: db}
}

func (r *HallOfShameGormRepository) ListByDateDesc(
	ctx context.Context,
	gameKey string,
) ([]models.HallOfShameEntry, error) {

	q := r.db.WithContext(ctx)
	if gameKey != "" {
		q = q.Where("game_key = ?", gameKey)
	}

	var entries []models.HallOfShameEntry
	if err := q.
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HallOfShameGormRepository) Get(ctx context.Context, id uuid.UUID) (*models.HallOfShameEntry, error) {
	var e models.HallOfShameEntry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, httperr.FromStore(err)
	}
	return &e, nil
}

func (r *HallOfShameGormRepository) Create(ctx context.Context, e *models.HallOfShameEntry) error {
	return httperr.FromStore(r.db.WithContext(ctx).Create(e).Error)
}

func (r *HallOfShameGormRepository) Update(ctx context.Context, e *models.HallOfShameEntry) error {
	return updateRow(ctx, r.db, e)
}

func (r *HallOfShameGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.HallOfShameEntry](ctx, r.db, id)
}
