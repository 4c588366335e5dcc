package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/lock"
)

var window = lock.NewRateLimitKey("wheelchair", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Hour)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestLockStore_LockUnlock(t *testing.T) {
	t.Parallel()
	mr, client := newTestClient(t)
	store := NewLockStore(client, 2*time.Hour)
	ctx := context.Background()
	key := lock.RegistrationKey("agent-1", "program-1")

	if err := store.Lock(ctx, key, "tx-1"); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	if ttl := mr.TTL(key); ttl != 2*time.Hour {
		t.Errorf("TTL = %v, want 2h", ttl)
	}

	if err := store.Lock(ctx, key, "tx-2"); !errors.Is(err, domain.ErrAlreadyInProgress) {
		t.Errorf("second Lock() error = %v, want ErrAlreadyInProgress", err)
	}

	holder, err := store.GetHolder(ctx, key)
	if err != nil || holder != "tx-1" {
		t.Errorf("GetHolder() = (%q, %v), want (tx-1, nil)", holder, err)
	}

	if err := store.Unlock(ctx, key); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if err := store.Unlock(ctx, key); err != nil {
		t.Errorf("second Unlock() error = %v", err)
	}
	if holder, err := store.GetHolder(ctx, key); err != nil || holder != "" {
		t.Errorf("GetHolder() after Unlock = (%q, %v), want empty", holder, err)
	}
}

func TestLockStore_Expires(t *testing.T) {
	t.Parallel()
	mr, client := newTestClient(t)
	store := NewLockStore(client, time.Minute)
	ctx := context.Background()

	if err := store.Lock(ctx, "registration:a:p", "tx-1"); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	mr.FastForward(time.Minute)

	if err := store.Lock(ctx, "registration:a:p", "tx-2"); err != nil {
		t.Errorf("Lock() after TTL error = %v", err)
	}
}

func TestLockStore_ConcurrentLock(t *testing.T) {
	t.Parallel()
	_, client := newTestClient(t)
	store := NewLockStore(client, time.Hour)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := range 10 {
		wg.Go(func() {
			if err := store.Lock(ctx, "registration:a:p", fmt.Sprintf("tx-%d", i)); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	if winners != 1 {
		t.Errorf("winners = %d, want 1", winners)
	}
}

func TestLockStore_RedisDown(t *testing.T) {
	t.Parallel()
	mr, client := newTestClient(t)
	store := NewLockStore(client, time.Hour)
	mr.Close()

	err := store.Lock(context.Background(), "registration:a:p", "tx-1")
	if err == nil || errors.Is(err, domain.ErrAlreadyInProgress) {
		t.Errorf("Lock() error = %v, want infrastructure error", err)
	}
}

func TestRateLimiter_Capacity(t *testing.T) {
	t.Parallel()
	mr, client := newTestClient(t)
	limiter := NewRateLimiter(client, func(string) int { return 2 })
	ctx := context.Background()

	for _, holder := range []string{"tx-1", "tx-2"} {
		if err := limiter.Lock(ctx, window, holder); err != nil {
			t.Fatalf("Lock(%s) error = %v", holder, err)
		}
	}
	if ttl := mr.TTL(window.SlotKey(0)); ttl != time.Hour {
		t.Errorf("slot TTL = %v, want 1h", ttl)
	}
	if !mr.Exists("{" + window.String() + "}:1") {
		t.Errorf("keys = %v, want hash-tagged slot keys", mr.Keys())
	}

	if err := limiter.Lock(ctx, window, "tx-3"); !errors.Is(err, domain.ErrLimitExceeded) {
		t.Fatalf("Lock(tx-3) error = %v, want ErrLimitExceeded", err)
	}
	if err := limiter.Lock(ctx, window, "tx-2"); err != nil {
		t.Errorf("Lock() by existing holder error = %v, want refresh", err)
	}

	holders, err := limiter.Holders(ctx, window)
	if err != nil {
		t.Fatalf("Holders() error = %v", err)
	}
	if len(holders) != 2 || holders[0] != "tx-1" || holders[1] != "tx-2" {
		t.Errorf("Holders() = %v, want [tx-1 tx-2]", holders)
	}
}

func TestRateLimiter_ReleaseOnlyOwnSlot(t *testing.T) {
	t.Parallel()
	_, client := newTestClient(t)
	limiter := NewRateLimiter(client, func(string) int { return 1 })
	ctx := context.Background()

	if err := limiter.Lock(ctx, window, "tx-1"); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	if err := limiter.Release(ctx, window, "tx-2"); err != nil {
		t.Fatalf("Release(tx-2) error = %v", err)
	}
	if holder, _ := limiter.GetHolder(ctx, window); holder != "tx-1" {
		t.Errorf("GetHolder() = %q, want tx-1", holder)
	}

	if err := limiter.Release(ctx, window, "tx-1"); err != nil {
		t.Fatalf("Release(tx-1) error = %v", err)
	}
	if holder, _ := limiter.GetHolder(ctx, window); holder != "" {
		t.Errorf("GetHolder() after Release = %q, want empty", holder)
	}
	if err := limiter.Release(ctx, window, "tx-1"); err != nil {
		t.Errorf("repeated Release() error = %v", err)
	}
}

func TestRateLimiter_Unlock(t *testing.T) {
	t.Parallel()
	_, client := newTestClient(t)
	limiter := NewRateLimiter(client, func(string) int { return 3 })
	ctx := context.Background()

	for i := range 3 {
		_ = limiter.Lock(ctx, window, fmt.Sprintf("tx-%d", i))
	}
	if err := limiter.Unlock(ctx, window); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	holders, _ := limiter.Holders(ctx, window)
	if len(holders) != 0 {
		t.Errorf("Holders() after Unlock = %v, want none", holders)
	}
}

func TestRateLimiter_SlotsExpire(t *testing.T) {
	t.Parallel()
	mr, client := newTestClient(t)
	limiter := NewRateLimiter(client, func(string) int { return 1 })
	ctx := context.Background()

	_ = limiter.Lock(ctx, window, "tx-1")
	mr.FastForward(time.Hour)

	if err := limiter.Lock(ctx, window, "tx-2"); err != nil {
		t.Errorf("Lock() after window error = %v", err)
	}
}

func TestRateLimiter_ConcurrentLock(t *testing.T) {
	t.Parallel()
	_, client := newTestClient(t)
	const capacity = 3
	limiter := NewRateLimiter(client, func(string) int { return capacity })
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := range capacity * 3 {
		wg.Go(func() {
			if err := limiter.Lock(ctx, window, fmt.Sprintf("tx-%d", i)); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	if accepted != capacity {
		t.Errorf("accepted = %d, want %d", accepted, capacity)
	}
}

func TestHealthChecker(t *testing.T) {
	t.Parallel()
	mr, client := newTestClient(t)
	checker := NewHealthChecker(client)

	if checker.Name() != "redis" {
		t.Errorf("Name() = %q, want redis", checker.Name())
	}
	if err := checker.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	mr.Close()
	if err := checker.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after close error = nil, want error")
	}
}
