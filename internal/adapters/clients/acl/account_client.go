package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/clients/acl/account"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/httpclient"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AccountClient = (*AccountClient)(nil)
	_ ports.HealthChecker = (*AccountClient)(nil)
)

// AccountClient is the outbound adapter for the point-account backend.
// Deposits and withdrawals are started, then confirmed or canceled.
type AccountClient struct {
	req *requester
}

// NewAccountClient creates an AccountClient.
func NewAccountClient(client *httpclient.Client, logger *slog.Logger) *AccountClient {
	return &AccountClient{req: newRequester(client, logger)}
}

// StartDeposit sends POST /transactions/deposit.
func (c *AccountClient) StartDeposit(ctx context.Context, req ports.DepositRequest) (*ports.AccountTransaction, error) {
	return c.start(ctx, "/transactions/deposit", account.ToDepositRequest(req))
}

// StartWithdraw sends POST /transactions/withdraw.
func (c *AccountClient) StartWithdraw(ctx context.Context, req ports.WithdrawRequest) (*ports.AccountTransaction, error) {
	return c.start(ctx, "/transactions/withdraw", account.ToWithdrawRequest(req))
}

func (c *AccountClient) start(ctx context.Context, path string, body account.TransactionRequestDTO) (*ports.AccountTransaction, error) {
	var dto account.TransactionDTO
	err := c.req.do(ctx, call{
		method:     http.MethodPost,
		path:       path,
		want:       http.StatusCreated,
		in:         body,
		out:        &dto,
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}
	return account.ToDomainTransaction(&dto), nil
}

// ConfirmTransaction sends PUT /transactions/{id}/confirm.
func (c *AccountClient) ConfirmTransaction(ctx context.Context, id string) error {
	return c.settle(ctx, id, "confirm")
}

// CancelTransaction sends PUT /transactions/{id}/cancel.
func (c *AccountClient) CancelTransaction(ctx context.Context, id string) error {
	return c.settle(ctx, id, "cancel")
}

func (c *AccountClient) settle(ctx context.Context, id, verb string) error {
	path := "/transactions/" + url.PathEscape(id) + "/" + verb
	return c.req.do(ctx, call{method: http.MethodPut, path: path, want: http.StatusNoContent})
}

// Name returns the identifier used in readiness output.
func (c *AccountClient) Name() string { return c.req.client.Name() }

// HealthCheck reports the circuit breaker state of the account backend.
func (c *AccountClient) HealthCheck(ctx context.Context) error { return c.req.client.HealthCheck(ctx) }
