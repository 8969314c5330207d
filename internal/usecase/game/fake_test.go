package game

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// FakeRepository enforces the unique key index like the real table.
type FakeRepository struct {
	items map[uuid.UUID]models.Game
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{items: map[uuid.UUID]models.Game{}}
}

func (f *FakeRepository) ListByName(ctx context.Context) ([]models.Game, error) {
	out := make([]models.Game, 0, len(f.items))
	for _, g := range f.items {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *FakeRepository) Create(ctx context.Context, g *models.Game) error {
	for _, existing := range f.items {
		if existing.Key == g.Key {
			return errors.Join(httperr.ErrDuplicate, errors.New(`duplicate key value violates unique constraint "idx_games_key"`))
		}
	}
	g.ID = uuid.New()
	f.items[g.ID] = *g
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
