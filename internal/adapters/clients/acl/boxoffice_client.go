package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/clients/acl/boxoffice"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/httpclient"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BoxOfficeClient = (*BoxOfficeClient)(nil)
	_ ports.HealthChecker   = (*BoxOfficeClient)(nil)
)

// BoxOfficeClient is the outbound adapter for the legacy box office, which
// still allocates seats for the events it owns.
type BoxOfficeClient struct {
	req *requester
}

// NewBoxOfficeClient creates a BoxOfficeClient.
func NewBoxOfficeClient(client *httpclient.Client, logger *slog.Logger) *BoxOfficeClient {
	return &BoxOfficeClient{req: newRequester(client, logger)}
}

// CreateTentative sends POST /tentative_reservations.
func (c *BoxOfficeClient) CreateTentative(ctx context.Context, transactionID string, req action.SeatReservationRequest) (*action.SeatReservationResponse, error) {
	var dto boxoffice.TentativeDTO
	body := boxoffice.ToTentativeRequest(transactionID, req)
	err := c.req.do(ctx, call{method: http.MethodPost, path: "/tentative_reservations", want: http.StatusOK, in: body, out: &dto})
	if err != nil {
		return nil, err
	}
	return boxoffice.ToDomainReservation(&dto), nil
}

// ConfirmTentative sends PUT /tentative_reservations/{number}/settle.
func (c *BoxOfficeClient) ConfirmTentative(ctx context.Context, reservationNumber string) error {
	path := "/tentative_reservations/" + url.PathEscape(reservationNumber) + "/settle"
	return c.req.do(ctx, call{method: http.MethodPut, path: path, want: http.StatusNoContent})
}

// DeleteTentative sends DELETE /tentative_reservations/{number}.
func (c *BoxOfficeClient) DeleteTentative(ctx context.Context, reservationNumber string) error {
	path := "/tentative_reservations/" + url.PathEscape(reservationNumber)
	return c.req.do(ctx, call{method: http.MethodDelete, path: path, want: http.StatusNoContent})
}

// Name returns the identifier used in readiness output.
func (c *BoxOfficeClient) Name() string { return c.req.client.Name() }

// HealthCheck reports the circuit breaker state of the box office.
func (c *BoxOfficeClient) HealthCheck(ctx context.Context) error { return c.req.client.HealthCheck(ctx) }
