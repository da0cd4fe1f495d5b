package ports

import (
	"context"

	"github.com/clynicx/portal-service/internal/core/domain"
)

// SlotStore is the durable key-value area behind session slots. Get
// reports a missing key with found == false and a nil error; errors are
// reserved for backend failures.
type SlotStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// SessionStore is the single profile slot of one origin. Load returns a
// nil user when the slot is empty or held unreadable data.
type SessionStore interface {
	Load(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Clear(ctx context.Context) error
}
