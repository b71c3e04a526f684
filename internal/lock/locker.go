package lock

import (
	"context"
	"sync"
	"time"
)

const retryInterval = 100 * time.Millisecond

// Locker serializes work on the same key
type Locker interface {
	Lock(key string) Unlocker
	ContextLock(ctx context.Context, key string) (Unlocker, error)
}

type Unlocker interface {
	Unlock()
}

type lock struct {
	mu     sync.Mutex
	ref    uint64
	locker *locker
	key    string
}

// Unlock implements Unlocker.
func (lck *lock) Unlock() {
	lck.locker.release(lck)
	lck.mu.Unlock()
}

type locker struct {
	mu sync.Mutex
	l  map[string]*lock
}

func (l *locker) getOrCreate(key string) *lock {
	l.mu.Lock()
	defer l.mu.Unlock()

	result, ok := l.l[key]
	if !ok {
		result = &lock{locker: l, key: key}
		l.l[key] = result
	}
	result.ref++
	return result
}

// ContextLock implements Locker.
func (l *locker) ContextLock(ctx context.Context, key string) (Unlocker, error) {
	itemLock := l.getOrCreate(key)
	if itemLock.mu.TryLock() {
		return itemLock, nil
	}

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.release(itemLock)
			return nil, ctx.Err()
		case <-ticker.C:
			if itemLock.mu.TryLock() {
				return itemLock, nil
			}
		}
	}
}

// Lock implements Locker.
func (l *locker) Lock(key string) Unlocker {
	itemLock := l.getOrCreate(key)
	itemLock.mu.Lock()
	return itemLock
}

func (l *locker) release(lck *lock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lck.ref--
	if lck.ref == 0 {
		delete(l.l, lck.key)
	}
}

func (l *locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.l)
}

func NewLocker() Locker {
	return &locker{
		l: map[string]*lock{},
	}
}
