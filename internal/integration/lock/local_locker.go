package lock

import (
	"context"
	"sync"
	"time"

	"github.com/wealth-planner/backend/internal/application/adapter"
)

// LocalLocker grants locks within a single process. It is used when Redis is not configured.
type LocalLocker struct {
	mu         sync.Mutex
	held       map[string]localHold
	generation uint64
	clock      func() time.Time
}

type localHold struct {
	generation uint64
	expiresAt  time.Time
}

// NewLocalLocker creates a new in-process locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localHold),
		clock: time.Now,
	}
}

var _ adapter.Locker = (*LocalLocker)(nil)

// TryLock attempts to acquire key without waiting. Expired holds are taken over.
func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (adapter.Unlocker, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if hold, ok := l.held[key]; ok && now.Before(hold.expiresAt) {
		return nil, false, nil
	}

	l.generation++
	mine := localHold{generation: l.generation, expiresAt: now.Add(ttl)}
	l.held[key] = mine

	unlock := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if current, ok := l.held[key]; ok && current.generation == mine.generation {
			delete(l.held, key)
		}
		return nil
	}
	return unlock, true, nil
}
