package game

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/game"
)

type DeleteGame struct {
	repo domain.Repository
}

func NewDeleteGame(repo domain.Repository) *DeleteGame {
	return &DeleteGame{repo: repo}
}

// Execute does not touch hall of shame entries; they hold a snapshot.
func (uc *DeleteGame) Execute(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
