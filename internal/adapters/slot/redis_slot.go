package slot

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/clynicx/portal-service/internal/core/ports"
)

// RedisClient is the subset of *redis.Client the slot store uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisSlot keeps session slots in Redis. A zero ttl keeps values until
// they are cleared.
type RedisSlot struct {
	client RedisClient
	ttl    time.Duration
	cb     *gobreaker.CircuitBreaker
}

var _ ports.SlotStore = (*RedisSlot)(nil)

func NewRedisSlot(client RedisClient, ttl time.Duration, cb *gobreaker.CircuitBreaker) *RedisSlot {
	return &RedisSlot{client: client, ttl: ttl, cb: cb}
}

func (s *RedisSlot) Get(ctx context.Context, key string) (string, bool, error) {
	// A missing key is not a failure and must not count against the breaker.
	res, err := s.cb.Execute(func() (interface{}, error) {
		val, err := s.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return val, nil
	})
	if err != nil {
		return "", false, err
	}
	val, ok := res.(string)
	return val, ok, nil
}

func (s *RedisSlot) Set(ctx context.Context, key, value string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, key, value, s.ttl).Err()
	})
	return err
}

func (s *RedisSlot) Delete(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, key).Err()
	})
	return err
}

// Ping bypasses the breaker so readiness reflects Redis itself.
func (s *RedisSlot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
