package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/health"
	"github.com/jsamuelsen11/boxoffice-orchestrator/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New(time.Second).CheckAll(context.Background())
	if results == nil || len(results) != 0 {
		t.Errorf("CheckAll() = %v, want empty non-nil map", results)
	}
}

func TestCheckAll_Results(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	r := health.New(time.Second)
	r.Register(checker(t, "postgres", nil))
	r.Register(checker(t, "redis", nil))
	r.Register(checker(t, "reservation-api", refused))

	results := r.CheckAll(context.Background())

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if results["postgres"] != nil || results["redis"] != nil {
		t.Errorf("stores = %v/%v, want healthy", results["postgres"], results["redis"])
	}
	if !errors.Is(results["reservation-api"], refused) {
		t.Errorf("reservation-api = %v, want %v", results["reservation-api"], refused)
	}
}

func TestCheckAll_SameNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("postgres")

	down := errors.New("pool closed")
	r := health.New(time.Second)
	r.Register(first)
	r.Register(checker(t, "postgres", down))

	results := r.CheckAll(context.Background())
	if len(results) != 1 || !errors.Is(results["postgres"], down) {
		t.Errorf("CheckAll() = %v, want only the replacement checker", results)
	}
	if got := r.Names(); len(got) != 1 || got[0] != "postgres" {
		t.Errorf("Names() = %v", got)
	}
}

func TestCheckAll_HungCheckTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	hung := mocks.NewMockHealthChecker(t)
	hung.EXPECT().Name().Return("redis")
	hung.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
		<-release
		return nil
	})

	r := health.New(20 * time.Millisecond)
	r.Register(hung)
	r.Register(checker(t, "postgres", nil))

	start := time.Now()
	results := r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll() took %v, want it bounded by the timeout", elapsed)
	}
	if !errors.Is(results["redis"], context.DeadlineExceeded) {
		t.Errorf("redis = %v, want DeadlineExceeded", results["redis"])
	}
	if results["postgres"] != nil {
		t.Errorf("postgres = %v, want healthy", results["postgres"])
	}
}

func TestCheckAll_CanceledCaller(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("account-api")
	c.EXPECT().HealthCheck(mock.Anything).Return(context.Canceled).Maybe()

	r := health.New(0)
	r.Register(c)

	if got := r.CheckAll(ctx)["account-api"]; !errors.Is(got, context.Canceled) {
		t.Errorf("account-api = %v, want context.Canceled", got)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New(time.Second)

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker")
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
