// Package http is the inbound HTTP adapter: the place-order routes, the
// health probes and the server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	Transactions   *handlers.TransactionHandler
	Authorizations *handlers.AuthorizationHandler
	Actions        *handlers.ActionHandler
	Health         *handlers.HealthHandler
}

// NewRouter mounts the probes and the /api/v1 routes behind middlewares,
// applied in the order given. Every /api/v1 route requires an X-Agent-ID
// header. Unmatched paths and methods answer with a problem document.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(noRoute)
	r.MethodNotAllowed(wrongMethod)

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AgentID())

		r.Route("/transactions/placeOrder", func(r chi.Router) {
			r.Post("/start", h.Transactions.Start)

			r.Route("/{"+handlers.ParamTransactionID+"}", func(r chi.Router) {
				r.Put("/confirm", h.Transactions.Confirm)
				r.Put("/cancel", h.Transactions.Cancel)
				r.Put("/return", h.Transactions.Return)
				r.Get("/actions", h.Actions.ListByTransaction)

				r.Route("/actions/authorize", func(r chi.Router) {
					r.Post("/seatReservation", h.Authorizations.AuthorizeSeatReservation)
					r.Delete("/seatReservation/{"+handlers.ParamActionID+"}", h.Authorizations.CancelSeatReservation)
					r.Post("/pointAward", h.Authorizations.AuthorizePointAward)
					r.Delete("/pointAward/{"+handlers.ParamActionID+"}", h.Authorizations.CancelPointAward)
				})
			})
		})

		r.Get("/orders/{"+handlers.ParamOrderNumber+"}/actions", h.Actions.ListByOrderNumber)
	})

	return r
}

func noRoute(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, fmt.Errorf("no route for %s: %w", r.URL.Path, domain.ErrNotFound))
}

func wrongMethod(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewErrorResponse(r, fmt.Errorf("%s is not supported on %s", r.Method, r.URL.Path))
	resp.Status = http.StatusMethodNotAllowed
	resp.Title = http.StatusText(http.StatusMethodNotAllowed)
	dto.WriteProblem(w, r, resp)
}
