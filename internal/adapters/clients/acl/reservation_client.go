package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/clients/acl/reservation"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/event"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/httpclient"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ReservationClient = (*ReservationClient)(nil)
	_ ports.HealthChecker     = (*ReservationClient)(nil)
)

// ReservationClient is the outbound adapter for the reservation backend. It
// implements [ports.ReservationClient].
//
// All methods translate between domain types and the backend's
// representations via the translators in [reservation]. Error responses
// become *domain.ExternalError by [TranslateHTTPError].
type ReservationClient struct {
	req *requester
}

// NewReservationClient creates a ReservationClient that sends requests
// through the given [httpclient.Client].
func NewReservationClient(client *httpclient.Client, logger *slog.Logger) *ReservationClient {
	return &ReservationClient{req: newRequester(client, logger)}
}

// GetEvent fetches GET /events/{id}.
func (c *ReservationClient) GetEvent(ctx context.Context, eventID string) (*event.Event, error) {
	var dto reservation.EventDTO
	path := "/events/" + url.PathEscape(eventID)
	if err := c.req.do(ctx, call{method: http.MethodGet, path: path, want: http.StatusOK, out: &dto}); err != nil {
		return nil, err
	}
	return reservation.ToDomainEvent(&dto)
}

// SearchSeats fetches GET /events/{id}/seats.
func (c *ReservationClient) SearchSeats(ctx context.Context, eventID string) ([]event.Seat, error) {
	var dto reservation.SeatListDTO
	path := "/events/" + url.PathEscape(eventID) + "/seats"
	if err := c.req.do(ctx, call{method: http.MethodGet, path: path, want: http.StatusOK, out: &dto}); err != nil {
		return nil, err
	}
	return reservation.ToDomainSeats(dto), nil
}

// StartReservation sends POST /reservations and returns the held seats.
func (c *ReservationClient) StartReservation(ctx context.Context, transactionID string, req action.SeatReservationRequest) (*action.SeatReservationResponse, error) {
	var dto reservation.ReservationDTO
	body := reservation.ToReservationRequest(transactionID, req)
	err := c.req.do(ctx, call{
		method:     http.MethodPost,
		path:       "/reservations",
		want:       http.StatusCreated,
		in:         body,
		out:        &dto,
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}
	return reservation.ToDomainReservation(&dto), nil
}

// ConfirmReservation sends PUT /reservations/{number}/confirm.
func (c *ReservationClient) ConfirmReservation(ctx context.Context, reservationNumber string) error {
	path := "/reservations/" + url.PathEscape(reservationNumber) + "/confirm"
	return c.req.do(ctx, call{method: http.MethodPut, path: path, want: http.StatusNoContent})
}

// CancelReservation sends DELETE /reservations/{number}.
func (c *ReservationClient) CancelReservation(ctx context.Context, reservationNumber string) error {
	path := "/reservations/" + url.PathEscape(reservationNumber)
	return c.req.do(ctx, call{method: http.MethodDelete, path: path, want: http.StatusNoContent})
}

// Name returns the identifier used in readiness output.
func (c *ReservationClient) Name() string { return c.req.client.Name() }

// HealthCheck reports the circuit breaker state of the backend.
func (c *ReservationClient) HealthCheck(ctx context.Context) error { return c.req.client.HealthCheck(ctx) }
