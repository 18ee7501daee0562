// Package lock serializes ledger writes per key.
//
// Two lockers are provided: Local, an in-process keyed mutex for a single
// server, and Redis, a distributed lock for several servers sharing one
// database.
package lock

import (
	"context"
	"errors"
)

// ErrNotObtained is returned when the lock could not be acquired before the
// context was done.
var ErrNotObtained = errors.New("lock not obtained")

// Locker acquires exclusive locks by key.
//
//go:generate mockgen -destination=mocks/mock_locker.go -package=mock_lock -source=lock.go Locker
type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func releases
	// the lock and is safe to call more than once.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
