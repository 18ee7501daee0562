package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// Redis is a distributed Locker backed by redislock.
type Redis struct {
	client  *redislock.Client
	ttl     time.Duration
	backoff time.Duration
}

// NewRedis returns a Locker using rdb. A held lock expires after ttl even if
// the holder dies without releasing it.
func NewRedis(rdb redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{
		client:  redislock.New(rdb),
		ttl:     ttl,
		backoff: 25 * time.Millisecond,
	}
}

// Lock implements Locker. It retries with a linear backoff until ctx is done.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	l, err := r.client.Obtain(ctx, key, r.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(r.backoff),
	})
	// Obtain reports ctx's error rather than ErrNotObtained once the wait
	// deadline passes.
	if errors.Is(err, redislock.ErrNotObtained) || (err != nil && ctx.Err() != nil) {
		return nil, ErrNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be cancelled.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := l.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
				slog.Warn("failed to release lock", "key", key, "error", err)
			}
		})
	}, nil
}
