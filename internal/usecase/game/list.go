package game

import (
	"context"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/game"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

type ListGames struct {
	repo domain.Repository
}

func NewListGames(repo domain.Repository) *ListGames {
	return &ListGames{repo: repo}
}

func (uc *ListGames) Execute(ctx context.Context) ([]models.Game, error) {
	return uc.repo.ListByName(ctx)
}
