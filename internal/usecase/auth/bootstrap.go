package auth

import (
	"context"
	"errors"
	"log/slog"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/user"
)

// Bootstrap seeds the default admin account when the user collection is
// empty. Running it again, or concurrently, never creates a second admin.
type Bootstrap struct {
	users  domain.Repository
	create *CreateUser
	logger *slog.Logger
}

func NewBootstrap(users domain.Repository, logger *slog.Logger) *Bootstrap {
	return &Bootstrap{
		users:  users,
		create: NewCreateUser(users),
		logger: logger,
	}
}

// Execute reports whether the default admin was created by this call.
func (uc *Bootstrap) Execute(ctx context.Context) (bool, error) {
	count, err := uc.users.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	_, err = uc.create.Execute(ctx, domain.DefaultAdminUsername, domain.DefaultAdminPassword)
	if errors.Is(err, ErrUsernameTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	uc.logger.Warn("default admin user created",
		"username", domain.DefaultAdminUsername,
	)
	return true, nil
}
