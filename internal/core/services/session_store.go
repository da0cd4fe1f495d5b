package services

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// SessionSlotKey names the single slot each origin owns.
const SessionSlotKey = "user"

// SlotKey is the backend key of an origin's session slot.
func SlotKey(originID string) string {
	return "origin:" + originID + ":" + SessionSlotKey
}

// SlotSessionStore keeps one serialised profile per origin.
type SlotSessionStore struct {
	slots  ports.SlotStore
	key    string
	logger *zap.Logger
}

var _ ports.SessionStore = (*SlotSessionStore)(nil)

func NewSessionStore(slots ports.SlotStore, originID string, logger *zap.Logger) *SlotSessionStore {
	return &SlotSessionStore{
		slots:  slots,
		key:    SlotKey(originID),
		logger: logger,
	}
}

// Load returns the resident profile. A value that does not decode into a
// profile with a known role is discarded and the slot cleared.
func (s *SlotSessionStore) Load(ctx context.Context) (*domain.User, error) {
	raw, found, err := s.slots.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSessionUnavailable, err)
	}
	if !found {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || !user.Role.Valid() {
		s.logger.Warn("discarding unreadable session slot",
			zap.String("key", s.key),
			zap.Error(err),
		)
		if err := s.slots.Delete(ctx, s.key); err != nil {
			s.logger.Error("failed to clear session slot", zap.String("key", s.key), zap.Error(err))
		}
		return nil, nil
	}
	return &user, nil
}

func (s *SlotSessionStore) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.slots.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSessionUnavailable, err)
	}
	return nil
}

func (s *SlotSessionStore) Clear(ctx context.Context) error {
	if err := s.slots.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSessionUnavailable, err)
	}
	return nil
}
