package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Readiness outcomes, worst last.
const (
	readinessReady    = "ready"
	readinessDegraded = "degraded"
	readinessNotReady = "not_ready"
)

const checkPassed = "ok"

// readinessBody is the readiness document.
type readinessBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes. The stores named
// in critical gate readiness; a failing remote backend only degrades it.
type HealthHandler struct {
	registry ports.HealthRegistry
	critical []string
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry, critical ...string) *HealthHandler {
	return &HealthHandler{registry: registry, critical: critical}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respond(w, r, http.StatusOK, map[string]string{"status": checkPassed})
}

// Readiness handles GET /health/ready: 503 when a critical check fails and
// 200 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	body := h.evaluate(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if body.Status == readinessNotReady {
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "not ready",
			slog.Any("checks", body.Checks),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	respond(w, r, code, body)
}

func (h *HealthHandler) evaluate(results map[string]error) readinessBody {
	body := readinessBody{Status: readinessReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err == nil {
			body.Checks[name] = checkPassed
			continue
		}
		body.Checks[name] = err.Error()
		switch {
		case slices.Contains(h.critical, name):
			body.Status = readinessNotReady
		case body.Status == readinessReady:
			body.Status = readinessDegraded
		}
	}
	return body
}
