package game

import (
	"context"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/game"
	"github.com/BruksfildServices01/venue-site/internal/models"
	"github.com/BruksfildServices01/venue-site/internal/validators"
)

type CreateGameInput struct {
	Name        string
	Key         string
	Image       string
	Description string
}

type CreateGame struct {
	repo domain.Repository
}

func NewCreateGame(repo domain.Repository) *CreateGame {
	return &CreateGame{repo: repo}
}

// Execute derives the key from the name when none is given. Collisions
// are left to the unique index and surface as httperr.ErrDuplicate.
func (uc *CreateGame) Execute(ctx context.Context, in CreateGameInput) (*models.Game, error) {
	g := &models.Game{
		Name:        in.Name,
		Key:         in.Key,
		Image:       in.Image,
		Description: in.Description,
	}
	domain.Normalize(g)

	if err := validators.Struct(g); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
