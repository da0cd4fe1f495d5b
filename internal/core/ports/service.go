package ports

import (
	"context"

	"github.com/clynicx/portal-service/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, store SessionStore, creds domain.Credentials) (*domain.User, error)
	Signup(ctx context.Context, store SessionStore, req domain.SignupRequest) (*domain.User, error)
	Logout(ctx context.Context, store SessionStore) error
}
