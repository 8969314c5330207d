package hallofshame

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/hallofshame"
)

type DeleteEntry struct {
	repo domain.Repository
}

func NewDeleteEntry(repo domain.Repository) *DeleteEntry {
	return &DeleteEntry{repo: repo}
}

func (uc *DeleteEntry) Execute(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
