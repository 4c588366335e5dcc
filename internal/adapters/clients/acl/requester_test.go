package acl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/httpclient"
)

// flakyBackend answers 503 to the first failures requests, then 201, and
// records the Idempotency-Key of every request.
type flakyBackend struct {
	mu       sync.Mutex
	failures int
	keys     []string
}

func (b *flakyBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.keys = append(b.keys, r.Header.Get(httpclient.HeaderIdempotencyKey))
	if len(b.keys) <= b.failures {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(`{"id":"ok"}`))
}

func (b *flakyBackend) seen() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.keys...)
}

func retryingClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 10, Timeout: time.Minute, HalfOpenLimit: 1},
	}
	return httpclient.New(cfg, "reservation-api", nil, discard())
}

func TestRequester_IdempotentPostIsReplayed(t *testing.T) {
	t.Parallel()

	backend := &flakyBackend{failures: 2}
	ts := httptest.NewServer(backend)
	defer ts.Close()

	r := newRequester(retryingClient(t, ts.URL), discard())
	var out struct {
		ID string `json:"id"`
	}
	err := r.do(context.Background(), call{
		method:     http.MethodPost,
		path:       "/reservations",
		want:       http.StatusCreated,
		in:         map[string]string{"transactionId": "tx-1"},
		out:        &out,
		idempotent: true,
	})
	if err != nil {
		t.Fatalf("do() error = %v", err)
	}
	if out.ID != "ok" {
		t.Errorf("out.ID = %q, want ok", out.ID)
	}

	keys := backend.seen()
	if len(keys) != 3 {
		t.Fatalf("requests = %d, want 3", len(keys))
	}
	if keys[0] == "" {
		t.Fatal("Idempotency-Key not sent")
	}
	for i, k := range keys {
		if k != keys[0] {
			t.Errorf("attempt %d key = %q, want the first attempt's %q", i, k, keys[0])
		}
	}
}

func TestRequester_PlainPostIsNotReplayed(t *testing.T) {
	t.Parallel()

	backend := &flakyBackend{failures: 2}
	ts := httptest.NewServer(backend)
	defer ts.Close()

	r := newRequester(retryingClient(t, ts.URL), discard())
	err := r.do(context.Background(), call{
		method: http.MethodPost,
		path:   "/tentative_reservations",
		want:   http.StatusCreated,
		in:     map[string]string{"transactionId": "tx-1"},
	})

	var ext *domain.ExternalError
	if !errors.As(err, &ext) || ext.Status != http.StatusServiceUnavailable {
		t.Fatalf("do() error = %v, want the backend's 503", err)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("do() error = %v, want ErrUnavailable", err)
	}
	if keys := backend.seen(); len(keys) != 1 || keys[0] != "" {
		t.Errorf("keys = %q, want one request without a key", keys)
	}
}

func TestRequester_EachCallGetsItsOwnKey(t *testing.T) {
	t.Parallel()

	backend := &flakyBackend{}
	ts := httptest.NewServer(backend)
	defer ts.Close()

	r := newRequester(retryingClient(t, ts.URL), discard())
	c := call{method: http.MethodPost, path: "/emails", want: http.StatusCreated, idempotent: true}
	for range 2 {
		if err := r.do(context.Background(), c); err != nil {
			t.Fatalf("do() error = %v", err)
		}
	}

	if keys := backend.seen(); len(keys) != 2 || keys[0] == keys[1] {
		t.Errorf("keys = %q, want two distinct keys", keys)
	}
}

func TestRequester_UndecodableBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer ts.Close()

	r := newRequester(retryingClient(t, ts.URL), discard())
	var out map[string]any
	err := r.do(context.Background(), call{method: http.MethodGet, path: "/events/ev-1", want: http.StatusOK, out: &out})
	if err == nil {
		t.Fatal("do() error = nil, want a decode error")
	}
	var ext *domain.ExternalError
	if errors.As(err, &ext) {
		t.Errorf("do() error = %v, a bad document is not a remote failure", err)
	}
}
