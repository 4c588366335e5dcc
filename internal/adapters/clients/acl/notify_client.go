package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/clients/acl/notify"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/httpclient"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EmailSender   = (*NotifyClient)(nil)
	_ ports.WebhookSender = (*NotifyClient)(nil)
	_ ports.HealthChecker = (*NotifyClient)(nil)
)

// NotifyClient sends order notifications: email through the notification
// service at the client's base URL, webhooks to subscriber URLs.
type NotifyClient struct {
	req *requester
}

// NewNotifyClient creates a NotifyClient.
func NewNotifyClient(client *httpclient.Client, logger *slog.Logger) *NotifyClient {
	return &NotifyClient{req: newRequester(client, logger)}
}

// Send sends POST /emails and returns the service's message id.
func (c *NotifyClient) Send(ctx context.Context, msg ports.EmailMessage) (string, error) {
	var dto notify.EmailResponseDTO
	err := c.req.do(ctx, call{
		method:     http.MethodPost,
		path:       "/emails",
		want:       http.StatusAccepted,
		in:         notify.ToEmailRequest(msg),
		out:        &dto,
		idempotent: true,
	})
	if err != nil {
		return "", err
	}
	return dto.MessageID, nil
}

// Post posts payload to the subscriber url and reports its status.
func (c *NotifyClient) Post(ctx context.Context, url string, payload json.RawMessage) (int, error) {
	return c.req.post(ctx, url, payload)
}

// Name returns the identifier used in readiness output.
func (c *NotifyClient) Name() string { return c.req.client.Name() }

// HealthCheck reports the circuit breaker state of the notification service.
func (c *NotifyClient) HealthCheck(ctx context.Context) error { return c.req.client.HealthCheck(ctx) }
