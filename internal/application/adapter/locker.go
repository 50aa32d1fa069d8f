package adapter

import (
	"context"
	"time"
)

// Unlocker releases a lock obtained from a Locker.
type Unlocker func(ctx context.Context) error

// Locker grants at-most-one-holder access to a named key for a bounded time.
type Locker interface {
	// TryLock attempts to acquire key without waiting. ok is false when another
	// holder owns the key. The lock expires on its own after ttl.
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock Unlocker, ok bool, err error)
}
