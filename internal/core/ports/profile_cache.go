package ports

import (
	"context"

	"github.com/userauth/auth-api/internal/core/domain"
)

// ProfileCache is a best-effort read-through cache for public profiles.
// Implementations must never store the password hash.
type ProfileCache interface {
	// Get returns the cached profile and whether it was present.
	Get(ctx context.Context, id string) (*domain.User, bool, error)
	// Set stores the profile until the cache TTL elapses.
	Set(ctx context.Context, user *domain.User) error
}
