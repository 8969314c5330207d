package auth

import (
	"context"
	"errors"
	"strings"

	authsvc "github.com/BruksfildServices01/venue-site/internal/auth"
	domain "github.com/BruksfildServices01/venue-site/internal/domain/user"
	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
	"github.com/BruksfildServices01/venue-site/internal/validators"
)

var ErrUsernameTaken = httperr.ErrBusinessMsg("username_taken", "Username already exists")

type CreateUser struct {
	users domain.Repository
}

func NewCreateUser(users domain.Repository) *CreateUser {
	return &CreateUser{users: users}
}

func (uc *CreateUser) Execute(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errMissingCredentials
	}
	if len(password) > authsvc.MaxPasswordBytes {
		return nil, httperr.Invalid("password", "Password cannot be more than 72 bytes")
	}

	if _, err := uc.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, httperr.ErrNotFound) {
		return nil, err
	}

	hash, err := authsvc.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &models.User{Username: username, PasswordHash: hash}
	if err := validators.Struct(u); err != nil {
		return nil, err
	}

	if err := uc.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent insert of the same name
		if errors.Is(err, httperr.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}
