package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.LockStore = (*LockStore)(nil)

// LockStore is a TTL lock backed by one Redis key per lock.
type LockStore struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewLockStore creates a lock store whose keys expire after ttl.
func NewLockStore(client goredis.Cmdable, ttl time.Duration) *LockStore {
	return &LockStore{client: client, ttl: ttl}
}

// Lock sets key to holder with the store TTL only if key is unset.
func (s *LockStore) Lock(ctx context.Context, key, holder string) error {
	ok, err := s.client.SetNX(ctx, key, holder, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("locking %s: %w", key, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", key, domain.ErrAlreadyInProgress)
	}
	return nil
}

// Unlock deletes key.
func (s *LockStore) Unlock(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("unlocking %s: %w", key, err)
	}
	return nil
}

// GetHolder returns the current holder, or "".
func (s *LockStore) GetHolder(ctx context.Context, key string) (string, error) {
	holder, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading holder of %s: %w", key, err)
	}
	return holder, nil
}
