package config

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/core/domain"
)

// Breaker names.
const (
	BreakerRedisSession    = "Redis-Session"
	BreakerDirectory       = "PostgreSQL-Directory"
	BreakerRelayPostgreSQL = "Relay-PostgreSQL"
	BreakerRabbitMQ        = "RabbitMQ-Publisher"
)

// NewCircuitBreaker creates a circuit breaker with standard settings.
// The name parameter uniquely identifies the circuit breaker instance.
func NewCircuitBreaker(name string, logger *zap.Logger) *gobreaker.CircuitBreaker {
	var timeout time.Duration

	// Session reads sit on every page load, so the breaker retries sooner
	// than for the stores behind signup and the relay.
	switch name {
	case BreakerRedisSession:
		timeout = 5 * time.Second
	case BreakerDirectory, BreakerRelayPostgreSQL:
		timeout = 10 * time.Second
	default:
		timeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: backendHealthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Error("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

// backendHealthy reports whether err leaves the backend's health intact.
// Client mistakes and abandoned requests are not backend failures.
func backendHealthy(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrEmailTaken) ||
		errors.Is(err, domain.ErrProfileNotFound) ||
		errors.Is(err, context.Canceled)
}
