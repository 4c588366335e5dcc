package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
)

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}
}

func startServer(t *testing.T, s *adapthttp.Server) (net.Addr, context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	select {
	case addr := <-s.Started():
		return addr, cancel, errCh
	case err := <-errCh:
		cancel()
		t.Fatalf("Run() error = %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("server did not start")
	}
	return nil, cancel, errCh
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := testServerConfig()
	cfg.Port = 9090
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func TestServer_RunServesAndStops(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}), slog.New(slog.DiscardHandler))

	addr, cancel, errCh := startServer(t, s)

	resp, err := http.Get("http://" + addr.String() + "/health/live")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Run() after cancel = %v, want nil", err)
	}
}

func TestServer_DrainsInFlightRequest(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	s := adapthttp.NewServer(testServerConfig(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		time.Sleep(100 * time.Millisecond)
		_, _ = io.WriteString(w, "confirmed")
	}), nil)

	addr, cancel, errCh := startServer(t, s)

	got := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + addr.String() + "/")
		if err != nil {
			got <- err.Error()
			return
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		got <- string(b)
	}()

	<-entered
	cancel()

	if body := <-got; body != "confirmed" {
		t.Errorf("in-flight response = %q, want confirmed", body)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestServer_BaseContextCarriesLogger(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seen := make(chan bool, 1)

	s := adapthttp.NewServer(testServerConfig(), http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen <- logging.FromContext(r.Context()) == logger
	}), logger)

	addr, cancel, errCh := startServer(t, s)
	defer func() {
		cancel()
		<-errCh
	}()

	resp, err := http.Get("http://" + addr.String() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	resp.Body.Close()

	if !<-seen {
		t.Error("request context does not carry the server logger")
	}
}

func TestServer_ListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	cfg := testServerConfig()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	if err := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil).Run(context.Background()); err == nil {
		t.Error("Run() on a taken port returned nil")
	}
}
