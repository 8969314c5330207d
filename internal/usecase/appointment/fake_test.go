package appointment

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// ------------------------
// Fake Repository
// ------------------------

type FakeRepository struct {
	items map[uuid.UUID]models.Appointment

	CreateErr error
}

func NewFakeRepository(seed ...models.Appointment) *FakeRepository {
	f := &FakeRepository{items: map[uuid.UUID]models.Appointment{}}
	for _, ap := range seed {
		if ap.ID == uuid.Nil {
			ap.ID = uuid.New()
		}
		f.items[ap.ID] = ap
	}
	return f
}

func (f *FakeRepository) ListByDateDesc(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.items))
	for _, ap := range f.items {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *FakeRepository) Get(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := f.items[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &ap, nil
}

func (f *FakeRepository) Create(ctx context.Context, ap *models.Appointment) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	ap.ID = uuid.New()
	f.items[ap.ID] = *ap
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, ap *models.Appointment) error {
	if _, ok := f.items[ap.ID]; !ok {
		return httperr.ErrNotFound
	}
	f.items[ap.ID] = *ap
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
