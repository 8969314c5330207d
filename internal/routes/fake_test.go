package routes

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

var errStoreDown = errors.New("connection refused")

// ------------------------
// Appointments
// ------------------------

type fakeAppointments struct {
	mu    sync.Mutex
	items map[uuid.UUID]models.Appointment

	ListErr error
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{items: map[uuid.UUID]models.Appointment{}}
}

func (f *fakeAppointments) seed(ap models.Appointment) models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap.ID = uuid.New()
	f.items[ap.ID] = ap
	return ap
}

func (f *fakeAppointments) ListByDateDesc(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []models.Appointment
	for _, ap := range f.items {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeAppointments) Get(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.items[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &ap, nil
}

func (f *fakeAppointments) Create(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap.ID = uuid.New()
	f.items[ap.ID] = *ap
	return nil
}

func (f *fakeAppointments) Update(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[ap.ID]; !ok {
		return httperr.ErrNotFound
	}
	f.items[ap.ID] = *ap
	return nil
}

func (f *fakeAppointments) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ------------------------
// Games
// ------------------------

type fakeGames struct {
	mu    sync.Mutex
	items map[uuid.UUID]models.Game
}

func newFakeGames() *fakeGames {
	return &fakeGames{items: map[uuid.UUID]models.Game{}}
}

func (f *fakeGames) ListByName(ctx context.Context) ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Game
	for _, g := range f.items {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeGames) Create(ctx context.Context, g *models.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.Key == g.Key {
			return errors.Join(httperr.ErrDuplicate, errors.New("duplicate key value violates unique constraint"))
		}
	}
	g.ID = uuid.New()
	f.items[g.ID] = *g
	return nil
}

func (f *fakeGames) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ------------------------
// Hall of shame
// ------------------------

type fakeEntries struct {
	mu    sync.Mutex
	items map[uuid.UUID]models.HallOfShameEntry
}

func newFakeEntries() *fakeEntries {
	return &fakeEntries{items: map[uuid.UUID]models.HallOfShameEntry{}}
}

func (f *fakeEntries) ListByDateDesc(ctx context.Context, gameKey string) ([]models.HallOfShameEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.HallOfShameEntry
	for _, e := range f.items {
		if gameKey == "" || e.Game.Key == gameKey {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeEntries) Get(ctx context.Context, id uuid.UUID) (*models.HallOfShameEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEntries) Create(ctx context.Context, e *models.HallOfShameEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = uuid.New()
	f.items[e.ID] = *e
	return nil
}

func (f *fakeEntries) Update(ctx context.Context, e *models.HallOfShameEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[e.ID]; !ok {
		return httperr.ErrNotFound
	}
	f.items[e.ID] = *e
	return nil
}

func (f *fakeEntries) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ------------------------
// Users
// ------------------------

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.User{}}
}

func (f *fakeUsers) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) Create(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Username]; ok {
		return httperr.ErrDuplicate
	}
	u.ID = uuid.New()
	f.users[u.Username] = *u
	return nil
}

// ------------------------
// Object store
// ------------------------

type fakeObjectStore struct {
	keys []string
}

func (f *fakeObjectStore) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	f.keys = append(f.keys, key)
	return "https://cdn.test/" + key, nil
}
