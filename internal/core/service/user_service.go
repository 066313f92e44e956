package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/userauth/auth-api/internal/core/domain"
	"github.com/userauth/auth-api/internal/core/ports"
)

// UserService serves public profile reads through an optional cache.
type UserService struct {
	repo  ports.UserRepository
	cache ports.ProfileCache
	log   zerolog.Logger
}

// NewUserService builds a UserService. cache may be nil, in which case every
// read goes straight to the repository.
func NewUserService(repo ports.UserRepository, cache ports.ProfileCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, log: log}
}

// GetProfile returns the hash-free user record for id. Cache failures are
// logged and ignored; the store remains the source of truth.
func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		user, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("profile cache read failed")
		} else if ok {
			return user, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("profile cache write failed")
		}
	}

	return user, nil
}
