package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
)

// Server is the orchestration API listener.
type Server struct {
	srv     *http.Server
	drain   time.Duration
	logger  *slog.Logger
	started chan net.Addr
}

// NewServer creates the server for cfg. Request contexts start with logger
// so code running outside the logging middleware still logs with it.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
			BaseContext: func(net.Listener) context.Context {
				return logging.WithLogger(context.Background(), logger)
			},
		},
		drain:   cfg.ShutdownTimeout,
		logger:  logger,
		started: make(chan net.Addr, 1),
	}
}

// Run serves until ctx is canceled, then stops accepting connections and
// waits up to the shutdown timeout for in-flight requests. A clean stop
// returns nil.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.logger.InfoContext(ctx, "HTTP server listening", slog.String("addr", ln.Addr().String()))
	s.started <- ln.Addr()

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.InfoContext(ctx, "draining HTTP server", slog.Duration("timeout", s.drain))
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()

	shutdownErr := s.srv.Shutdown(drainCtx)
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(shutdownErr, fmt.Errorf("http server: %w", err))
	}
	if shutdownErr != nil {
		return fmt.Errorf("draining http server: %w", shutdownErr)
	}
	return nil
}

// Started yields the bound address once Run is listening. It is read at
// most once.
func (s *Server) Started() <-chan net.Addr {
	return s.started
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
