// Package lock builds the keys used by the lock store and the rate limiter.
// Holders are always explicit tokens chosen by the caller, typically a
// transaction id.
package lock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RegistrationKey scopes the "one registration in progress per agent and
// product" lock.
func RegistrationKey(agentID, productID string) string {
	return "registration:" + agentID + ":" + productID
}

// RateLimitKey identifies one window of a category quota.
type RateLimitKey struct {
	Category    string
	BucketStart time.Time
	Window      time.Duration
}

// NewRateLimitKey floors t to the start of its window so that every request
// inside the same window contends on the same key.
func NewRateLimitKey(category string, t time.Time, window time.Duration) RateLimitKey {
	if window <= 0 {
		window = time.Hour
	}
	return RateLimitKey{
		Category:    category,
		BucketStart: t.UTC().Truncate(window),
		Window:      window,
	}
}

// String renders ratelimit:{category}:{bucketStartUnix}:{windowSeconds}.
func (k RateLimitKey) String() string {
	return fmt.Sprintf("ratelimit:%s:%d:%d", k.Category, k.BucketStart.Unix(), int64(k.Window/time.Second))
}

// SlotKey is the key of one unit of quota inside the window. The window key
// is the hash tag, so all slots of a window live in one Redis Cluster slot
// and a script can touch them together.
func (k RateLimitKey) SlotKey(slot int) string {
	return "{" + k.String() + "}:" + strconv.Itoa(slot)
}

// ParseRateLimitKey is the inverse of RateLimitKey.String. Categories may not
// contain ':'.
func ParseRateLimitKey(s string) (RateLimitKey, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 || parts[0] != "ratelimit" || parts[1] == "" {
		return RateLimitKey{}, fmt.Errorf("malformed rate limit key %q", s)
	}
	start, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return RateLimitKey{}, fmt.Errorf("rate limit key %q: bucket start: %w", s, err)
	}
	seconds, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || seconds <= 0 {
		return RateLimitKey{}, fmt.Errorf("malformed rate limit window in %q", s)
	}
	return RateLimitKey{
		Category:    parts[1],
		BucketStart: time.Unix(start, 0).UTC(),
		Window:      time.Duration(seconds) * time.Second,
	}, nil
}
