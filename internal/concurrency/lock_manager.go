package concurrency

import (
	"sync"
)

// EconomyLock is the single critical section shared by every economy
// mutation. Mutations hold the writer side across read-mutate-persist; queries
// hold the reader side so they never observe a half-applied change.
type EconomyLock struct {
	mu sync.RWMutex
}

// NewEconomyLock creates a new EconomyLock
func NewEconomyLock() *EconomyLock {
	return &EconomyLock{}
}

// Writer returns the exclusive side of the lock.
func (l *EconomyLock) Writer() sync.Locker {
	return &l.mu
}

// Reader returns the shared side of the lock.
func (l *EconomyLock) Reader() sync.Locker {
	return l.mu.RLocker()
}
