package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/httpclient"
)

// call is one JSON exchange with a backend. want is the only status
// treated as success. A call marked idempotent carries a fresh
// Idempotency-Key, which the backend dedupes on and which lets the
// httpclient replay a POST.
type call struct {
	method     string
	path       string
	want       int
	in         any
	out        any
	idempotent bool
}

// requester runs calls through one httpclient.Client and turns every
// failure into a *domain.ExternalError.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func newRequester(client *httpclient.Client, logger *slog.Logger) *requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &requester{client: client, logger: logger.With(slog.String("peer_service", client.Name()))}
}

func (r *requester) do(ctx context.Context, c call) error {
	req, err := r.build(ctx, c)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.close(ctx, resp)
	}
	switch {
	case resp != nil && resp.StatusCode != c.want:
		// Retries can end with both a response and an error; the
		// backend's own problem document says more than the retry error.
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", c.want),
		)
		return TranslateHTTPError(r.client.Name(), resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.Any("error", err),
		)
		return requestFailed(r.client.Name(), fmt.Errorf("%s %s: %w", c.method, c.path, err))
	}

	if c.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(c.out); err != nil {
		return fmt.Errorf("decoding %s %s response from %s: %w", c.method, c.path, r.client.Name(), err)
	}
	return nil
}

func (r *requester) build(ctx context.Context, c call) (*http.Request, error) {
	body := io.Reader(http.NoBody)
	if c.in != nil {
		b, err := json.Marshal(c.in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", c.method, c.path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, r.client.BaseURL()+c.path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", c.method, c.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.idempotent {
		req.Header.Set(httpclient.HeaderIdempotencyKey, uuid.NewString())
	}
	return req, nil
}

// post delivers payload to an absolute url and hands back whatever status
// came back. Only getting no response at all is an error.
func (r *requester) post(ctx context.Context, url string, payload json.RawMessage) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("building POST %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		r.logger.ErrorContext(ctx, "delivery failed", slog.String("url", url), slog.Any("error", err))
		return 0, requestFailed(r.client.Name(), err)
	}
	defer r.close(ctx, resp)
	return resp.StatusCode, nil
}

func (r *requester) close(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing response body", slog.Any("error", err))
	}
}
