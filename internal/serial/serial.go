// Package serial serializes work per key. Budget mutations for one user run
// one at a time so read-modify-write sequences on balances cannot interleave.
package serial

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// Keyed hands out one binary semaphore per key and drops it once nobody
// holds or waits on it.
type Keyed struct {
	mu   sync.Mutex
	keys map[string]*entry
}

// NewKeyed returns an empty Keyed lock.
func NewKeyed() *Keyed {
	return &Keyed{keys: make(map[string]*entry)}
}

func (k *Keyed) acquireEntry(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.keys[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		k.keys[key] = e
	}
	e.refs++
	return e
}

func (k *Keyed) releaseEntry(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.keys, key)
	}
}

// Do runs fn while holding the lock for key. It returns ctx.Err() if the
// context ends before the lock is acquired.
func (k *Keyed) Do(ctx context.Context, key string, fn func() error) error {
	e := k.acquireEntry(key)
	defer k.releaseEntry(key, e)

	if err := e.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer e.sem.Release(1)

	return fn()
}

// Len returns the number of keys currently tracked.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.keys)
}
