package service

import (
	"sync"
	"time"
)

// InMemoryTokenBlacklist implements TokenBlacklist with a concurrent set.
//
// Each revoked token records an eviction deadline of now plus the token
// validity window; by the time a background sweep removes the entry, the
// token can no longer pass signature validation anyway, so the set stays
// bounded without ever re-admitting a live token.
//
// The blacklist is owned by the dependency container, not package state,
// so a multi-instance deployment can swap in a shared store behind the
// TokenBlacklist interface.
type InMemoryTokenBlacklist struct {
	entries  sync.Map // map[string]time.Time (eviction deadline)
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// Invalidate adds a token to the revoked set. Invalidating the same token
// twice is a no-op that refreshes the eviction deadline.
func (b *InMemoryTokenBlacklist) Invalidate(tokenString string) {
	b.entries.Store(tokenString, time.Now().Add(b.ttl))
}

// IsInvalid reports whether a token has been revoked.
func (b *InMemoryTokenBlacklist) IsInvalid(tokenString string) bool {
	_, found := b.entries.Load(tokenString)
	return found
}

// Stop terminates the background sweeper. Safe to call more than once.
func (b *InMemoryTokenBlacklist) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
}

// sweep removes entries whose eviction deadline has passed.
func (b *InMemoryTokenBlacklist) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			now := time.Now()
			b.entries.Range(func(key, value interface{}) bool {
				deadline := value.(time.Time)
				if deadline.Before(now) {
					b.entries.Delete(key)
				}
				return true
			})
		}
	}
}

// NewInMemoryTokenBlacklist creates a blacklist whose entries are swept
// once they outlive the token validity window. ttl should match the token
// expiration; sweepInterval controls how often expired entries are removed.
func NewInMemoryTokenBlacklist(ttl, sweepInterval time.Duration) *InMemoryTokenBlacklist {
	b := &InMemoryTokenBlacklist{
		ttl:  ttl,
		stop: make(chan struct{}),
	}

	go b.sweep(sweepInterval)

	return b
}
