package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseLocker(t *testing.T, l Locker) {
	t.Run("serializes holders of one key", func(t *testing.T) {
		var mu sync.Mutex
		inside, maxInside := 0, 0

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(context.Background(), "ledger:g1")
				if !assert.NoError(t, err) {
					return
				}
				defer unlock()

				mu.Lock()
				inside++
				maxInside = max(maxInside, inside)
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, maxInside)
	})

	t.Run("distinct keys do not block", func(t *testing.T) {
		unlockA, err := l.Lock(context.Background(), "ledger:a")
		require.NoError(t, err)
		defer unlockA()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		unlockB, err := l.Lock(ctx, "ledger:b")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("gives up when context is done", func(t *testing.T) {
		unlock, err := l.Lock(context.Background(), "ledger:busy")
		require.NoError(t, err)
		defer unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = l.Lock(ctx, "ledger:busy")
		assert.ErrorIs(t, err, ErrNotObtained)
	})

	t.Run("unlock is idempotent", func(t *testing.T) {
		unlock, err := l.Lock(context.Background(), "ledger:twice")
		require.NoError(t, err)
		unlock()
		unlock()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		unlock, err = l.Lock(ctx, "ledger:twice")
		require.NoError(t, err)
		unlock()
	})
}

func TestLocal(t *testing.T) {
	l := NewLocal()
	exerciseLocker(t, l)
	assert.Empty(t, l.slots)
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	exerciseLocker(t, NewRedis(rdb, 30*time.Second))
}
