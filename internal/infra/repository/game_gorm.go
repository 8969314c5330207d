package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

type GameGormRepository struct {
	db *gorm.DB
}

func NewGameGormRepository(db *gorm.DB) *GameGormRepository {
	return &GameGormRepository{db: db}
}

func (r *GameGormRepository) ListByName(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GameGormRepository) Create(ctx context.Context, g *models.Game) error {
	return httperr.FromStore(r.db.WithContext(ctx).Create(g).Error)
}

func (r *GameGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Game](ctx, r.db, id)
}
