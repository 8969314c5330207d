package hallofshame

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

type FakeRepository struct {
	items map[uuid.UUID]models.HallOfShameEntry
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{items: map[uuid.UUID]models.HallOfShameEntry{}}
}

func (f *FakeRepository) ListByDateDesc(ctx context.Context, gameKey string) ([]models.HallOfShameEntry, error) {
	var out []models.HallOfShameEntry
	for _, e := range f.items {
		if gameKey != "" && e.Game.Key != gameKey {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *FakeRepository) Get(ctx context.Context, id uuid.UUID) (*models.HallOfShameEntry, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &e, nil
}

func (f *FakeRepository) Create(ctx context.Context, e *models.HallOfShameEntry) error {
	e.ID = uuid.New()
	f.items[e.ID] = *e
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, e *models.HallOfShameEntry) error {
	if _, ok := f.items[e.ID]; !ok {
		return httperr.ErrNotFound
	}
	f.items[e.ID] = *e
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
