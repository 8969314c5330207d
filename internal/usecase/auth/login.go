package auth

import (
	"context"
	"errors"
	"strings"

	authsvc "github.com/BruksfildServices01/venue-site/internal/auth"
	domain "github.com/BruksfildServices01/venue-site/internal/domain/user"
	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

var errMissingCredentials = httperr.ErrBusinessMsg("missing_credentials", "Please provide username and password")

// dummyHash keeps the unknown-user path as slow as a real comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHiA1KbV3QbP7b7C8h1hKSm6z1Zk5S1K"

type LoginResult struct {
	User  *models.User
	Token string
}

type Login struct {
	users  domain.Repository
	tokens *authsvc.TokenService
}

func NewLogin(users domain.Repository, tokens *authsvc.TokenService) *Login {
	return &Login{users: users, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errMissingCredentials
	}

	u, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			authsvc.ComparePassword(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !authsvc.ComparePassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID.String(), u.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, Token: token}, nil
}
