package ports

import (
	"context"

	"github.com/userauth/auth-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
type UserRepository interface {
	// Create inserts the user and returns it with the store-assigned id.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByName returns the full record, password hash included, for
	// credential verification at login.
	FindByName(ctx context.Context, name string) (*domain.User, error)
	// FindByID returns the public record with the password hash excluded
	// from the projection. Returns domain.ErrInvalidUserID when id is not a
	// well-formed identifier for the store.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
