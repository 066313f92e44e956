package service

import (
	"context"
	"errors"
	"time"

	"github.com/userauth/auth-api/internal/core/domain"
	"github.com/userauth/auth-api/internal/core/password"
	"github.com/userauth/auth-api/internal/core/ports"
	"github.com/userauth/auth-api/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register hashes the password and persists a new user. The name pre-check
// gives duplicates a deterministic ErrUserExists; the repository's unique
// index backstops the window between check and insert.
func (s *AuthService) Register(ctx context.Context, name, pwd string) (*domain.User, error) {
	_, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := password.Hash(pwd)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and issues a bearer token for the user id.
func (s *AuthService) Login(ctx context.Context, name, pwd string) (string, *domain.User, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return "", nil, err
	}

	if !password.Verify(pwd, user.PasswordHash) {
		return "", nil, domain.ErrInvalidPassword
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}
