package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// FakeUserRepository mimics the unique username index.
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User

	CountErr   error
	CreateHook func(u *models.User) error
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: map[string]models.User{}}
}

func (f *FakeUserRepository) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CountErr != nil {
		return 0, f.CountErr
	}
	return int64(len(f.users)), nil
}

func (f *FakeUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &u, nil
}

func (f *FakeUserRepository) Create(ctx context.Context, u *models.User) error {
	if f.CreateHook != nil {
		if err := f.CreateHook(u); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Username]; ok {
		return errors.Join(httperr.ErrDuplicate, errors.New("duplicate key value violates unique constraint \"idx_users_username\""))
	}
	u.ID = uuid.New()
	f.users[u.Username] = *u
	return nil
}
