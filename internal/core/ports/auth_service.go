package ports

import (
	"context"

	"github.com/userauth/auth-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, password string) (*domain.User, error)
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
}
