package user

import (
	"context"

	"github.com/BruksfildServices01/venue-site/internal/models"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

type Repository interface {
	Count(ctx context.Context) (int64, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}
