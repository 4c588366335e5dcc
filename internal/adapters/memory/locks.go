package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/lock"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.LockStore   = (*LockStore)(nil)
	_ ports.RateLimiter = (*RateLimiter)(nil)
)

type entry struct {
	holder  string
	expires time.Time
}

// keyspace is a set-if-absent map with per-key expiry, shared by the lock
// store and the rate limiter.
type keyspace struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

func newKeyspace(now func() time.Time) *keyspace {
	if now == nil {
		now = time.Now
	}
	return &keyspace{now: now, entries: make(map[string]entry)}
}

// live returns the entry at key unless it is missing or expired. Callers
// hold mu.
func (k *keyspace) live(key string) (entry, bool) {
	e, ok := k.entries[key]
	if !ok {
		return entry{}, false
	}
	if !k.now().Before(e.expires) {
		delete(k.entries, key)
		return entry{}, false
	}
	return e, true
}

// LockStore is an in-memory TTL lock.
type LockStore struct {
	ks  *keyspace
	ttl time.Duration
}

// NewLockStore creates a lock store whose keys expire after ttl.
// A nil clock uses time.Now.
func NewLockStore(ttl time.Duration, now func() time.Time) *LockStore {
	return &LockStore{ks: newKeyspace(now), ttl: ttl}
}

// Lock sets key to holder only if key is unset or expired.
func (s *LockStore) Lock(_ context.Context, key, holder string) error {
	s.ks.mu.Lock()
	defer s.ks.mu.Unlock()

	if _, held := s.ks.live(key); held {
		return fmt.Errorf("%s: %w", key, domain.ErrAlreadyInProgress)
	}
	s.ks.entries[key] = entry{holder: holder, expires: s.ks.now().Add(s.ttl)}
	return nil
}

// Unlock deletes key unconditionally.
func (s *LockStore) Unlock(_ context.Context, key string) error {
	s.ks.mu.Lock()
	defer s.ks.mu.Unlock()

	delete(s.ks.entries, key)
	return nil
}

// GetHolder returns the current holder, or "".
func (s *LockStore) GetHolder(_ context.Context, key string) (string, error) {
	s.ks.mu.Lock()
	defer s.ks.mu.Unlock()

	e, _ := s.ks.live(key)
	return e.holder, nil
}

// RateLimiter is an in-memory windowed quota. Each window has capacity slots
// and every slot expires with the window.
type RateLimiter struct {
	ks       *keyspace
	capacity func(category string) int
}

// NewRateLimiter creates a rate limiter. capacity returns the number of
// slots per window for a category; values below 1 are treated as 1.
// A nil clock uses time.Now.
func NewRateLimiter(capacity func(category string) int, now func() time.Time) *RateLimiter {
	return &RateLimiter{ks: newKeyspace(now), capacity: capacity}
}

func (l *RateLimiter) slots(key lock.RateLimitKey) int {
	return max(l.capacity(key.Category), 1)
}

// Lock takes a free slot for holder or refreshes the slot it already holds.
func (l *RateLimiter) Lock(_ context.Context, key lock.RateLimitKey, holder string) error {
	l.ks.mu.Lock()
	defer l.ks.mu.Unlock()

	expires := l.ks.now().Add(key.Window)
	free := -1
	for slot := range l.slots(key) {
		e, held := l.ks.live(key.SlotKey(slot))
		if held && e.holder == holder {
			l.ks.entries[key.SlotKey(slot)] = entry{holder: holder, expires: expires}
			return nil
		}
		if !held && free < 0 {
			free = slot
		}
	}
	if free < 0 {
		return fmt.Errorf("%s: %w", key, domain.ErrLimitExceeded)
	}

	l.ks.entries[key.SlotKey(free)] = entry{holder: holder, expires: expires}
	return nil
}

// Unlock clears every slot of key.
func (l *RateLimiter) Unlock(_ context.Context, key lock.RateLimitKey) error {
	l.ks.mu.Lock()
	defer l.ks.mu.Unlock()

	for slot := range l.slots(key) {
		delete(l.ks.entries, key.SlotKey(slot))
	}
	return nil
}

// Release clears the slot held by holder, if any.
func (l *RateLimiter) Release(_ context.Context, key lock.RateLimitKey, holder string) error {
	l.ks.mu.Lock()
	defer l.ks.mu.Unlock()

	for slot := range l.slots(key) {
		if e, held := l.ks.live(key.SlotKey(slot)); held && e.holder == holder {
			delete(l.ks.entries, key.SlotKey(slot))
		}
	}
	return nil
}

// GetHolder returns the holder of the first occupied slot, or "".
func (l *RateLimiter) GetHolder(ctx context.Context, key lock.RateLimitKey) (string, error) {
	holders, err := l.Holders(ctx, key)
	if err != nil || len(holders) == 0 {
		return "", err
	}
	return holders[0], nil
}

// Holders returns every current holder of key in slot order.
func (l *RateLimiter) Holders(_ context.Context, key lock.RateLimitKey) ([]string, error) {
	l.ks.mu.Lock()
	defer l.ks.mu.Unlock()

	var holders []string
	for slot := range l.slots(key) {
		if e, held := l.ks.live(key.SlotKey(slot)); held {
			holders = append(holders, e.holder)
		}
	}
	return holders, nil
}
