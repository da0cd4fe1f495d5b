package ports

import (
	"context"
)

const ProfileCreatedEventType = "profile_created"

type ProfileCreatedEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type ProfileEventPublisher interface {
	PublishProfileCreated(ctx context.Context, evt ProfileCreatedEvent) error
}
