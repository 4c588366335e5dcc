package ports

import (
	"context"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/lock"
)

// LockStore is a TTL mutual-exclusion primitive. The TTL is fixed per store
// and applied atomically with the set, so a crashed holder never leaks a
// permanent lock.
type LockStore interface {
	// Lock sets key to holder only if key is unset.
	// Returns domain.ErrAlreadyInProgress if the key is held.
	Lock(ctx context.Context, key, holder string) error

	// Unlock deletes key unconditionally. Deleting an absent key is not an error.
	Unlock(ctx context.Context, key string) error

	// GetHolder returns the current holder, or "" when the key is unset.
	GetHolder(ctx context.Context, key string) (string, error)
}

// RateLimiter caps how many holders may occupy one window of a category
// quota. Each unit of quota is a slot with TTL equal to the window.
type RateLimiter interface {
	// Lock takes a free slot for holder, or refreshes the slot holder already
	// occupies. Returns domain.ErrLimitExceeded when every slot is held by
	// someone else.
	Lock(ctx context.Context, key lock.RateLimitKey, holder string) error

	// Unlock clears every slot of key.
	Unlock(ctx context.Context, key lock.RateLimitKey) error

	// Release clears the slot held by holder, if any. Slots reassigned to
	// another holder after expiry are left untouched.
	Release(ctx context.Context, key lock.RateLimitKey, holder string) error

	// GetHolder returns the holder of the first occupied slot, or "".
	GetHolder(ctx context.Context, key lock.RateLimitKey) (string, error)

	// Holders returns every current holder of key.
	Holders(ctx context.Context, key lock.RateLimitKey) ([]string, error)
}
