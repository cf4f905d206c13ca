// Package concurrency provides keyed locks that serialise work on one field.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key, created on first use
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the key's mutex
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Forget drops the mutex for a key that will not be used again.
// Only call it while holding that key's lock, or when no caller can still reach the key.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}
