package middleware

import (
	"context"

	"github.com/clynicx/portal-service/internal/core/ports"
	"github.com/clynicx/portal-service/internal/core/services"
)

type contextKey string

const (
	originIDKey  contextKey = "originID"
	sessionKey   contextKey = "session"
	gateStateKey contextKey = "gateState"
)

func WithOriginID(ctx context.Context, originID string) context.Context {
	return context.WithValue(ctx, originIDKey, originID)
}

func OriginIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(originIDKey).(string)
	return id
}

func WithSession(ctx context.Context, store ports.SessionStore) context.Context {
	return context.WithValue(ctx, sessionKey, store)
}

// SessionFrom returns the origin's session store, or nil outside the gate.
func SessionFrom(ctx context.Context) ports.SessionStore {
	store, _ := ctx.Value(sessionKey).(ports.SessionStore)
	return store
}

func WithGateState(ctx context.Context, state services.GateState) context.Context {
	return context.WithValue(ctx, gateStateKey, state)
}

// GateStateFrom returns the state the gate resolved for a rendered page.
func GateStateFrom(ctx context.Context) (services.GateState, bool) {
	state, ok := ctx.Value(gateStateKey).(services.GateState)
	return state, ok
}
