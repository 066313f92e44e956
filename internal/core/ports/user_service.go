package ports

import (
	"context"

	"github.com/userauth/auth-api/internal/core/domain"
)

type UserService interface {
	// GetProfile returns the user's public record (no password hash).
	GetProfile(ctx context.Context, id string) (*domain.User, error)
}
