package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/lock"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.RateLimiter = (*RateLimiter)(nil)

// acquireSlotScript takes or refreshes one slot of a window.
// KEYS    = slot keys of the window
// ARGV[1] = holder
// ARGV[2] = slot TTL in milliseconds
// Returns the 1-based slot taken, or 0 when every slot has another holder.
var acquireSlotScript = goredis.NewScript(`
local holder = ARGV[1]
local ttl = tonumber(ARGV[2])
local free = 0

for i, key in ipairs(KEYS) do
    local current = redis.call("GET", key)
    if current == holder then
        redis.call("PEXPIRE", key, ttl)
        return i
    end
    if not current and free == 0 then
        free = i
    end
end

if free > 0 then
    redis.call("SET", KEYS[free], holder, "PX", ttl)
end
return free
`)

// releaseSlotScript deletes only the slots whose value is the holder.
// KEYS    = slot keys of the window
// ARGV[1] = holder
// Returns the number of slots released.
var releaseSlotScript = goredis.NewScript(`
local released = 0
for _, key in ipairs(KEYS) do
    if redis.call("GET", key) == ARGV[1] then
        redis.call("DEL", key)
        released = released + 1
    end
end
return released
`)

// RateLimiter is a windowed category quota. A window of capacity N is N slot
// keys, each expiring with the window.
type RateLimiter struct {
	client   goredis.Cmdable
	capacity func(category string) int
}

// NewRateLimiter creates a rate limiter. capacity returns the number of
// slots per window for a category; values below 1 are treated as 1.
func NewRateLimiter(client goredis.Cmdable, capacity func(category string) int) *RateLimiter {
	return &RateLimiter{client: client, capacity: capacity}
}

func (l *RateLimiter) slotKeys(key lock.RateLimitKey) []string {
	n := max(l.capacity(key.Category), 1)
	keys := make([]string, n)
	for i := range n {
		keys[i] = key.SlotKey(i)
	}
	return keys
}

// Lock takes a free slot for holder or refreshes the slot it already holds.
func (l *RateLimiter) Lock(ctx context.Context, key lock.RateLimitKey, holder string) error {
	slot, err := acquireSlotScript.Run(ctx, l.client, l.slotKeys(key), holder, key.Window.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("acquiring %s: %w", key, err)
	}
	if slot == 0 {
		return fmt.Errorf("%s: %w", key, domain.ErrLimitExceeded)
	}
	return nil
}

// Unlock clears every slot of key.
func (l *RateLimiter) Unlock(ctx context.Context, key lock.RateLimitKey) error {
	if err := l.client.Del(ctx, l.slotKeys(key)...).Err(); err != nil {
		return fmt.Errorf("clearing %s: %w", key, err)
	}
	return nil
}

// Release clears the slot held by holder, if any.
func (l *RateLimiter) Release(ctx context.Context, key lock.RateLimitKey, holder string) error {
	if err := releaseSlotScript.Run(ctx, l.client, l.slotKeys(key), holder).Err(); err != nil {
		return fmt.Errorf("releasing %s for %s: %w", key, holder, err)
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
func (l *RateLimiter) Holders(ctx context.Context, key lock.RateLimitKey) ([]string, error) {
	values, err := l.client.MGet(ctx, l.slotKeys(key)...).Result()
	if err != nil {
		return nil, fmt.Errorf("reading holders of %s: %w", key, err)
	}

	var holders []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			holders = append(holders, s)
		}
	}
	return holders, nil
}
