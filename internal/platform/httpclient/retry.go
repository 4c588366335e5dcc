package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
)

// HeaderIdempotencyKey marks a POST as safe to replay. Backends dedupe on it.
const HeaderIdempotencyKey = "Idempotency-Key"

// retryPolicy is the jittered exponential backoff applied to replayable
// requests. A POST without an Idempotency-Key gets a single attempt.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	maxInterval time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: max(cfg.MaxAttempts, 1),
		initial:     cfg.InitialInterval,
		maxInterval: cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

func (p retryPolicy) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initial
	b.MaxInterval = p.maxInterval
	b.Multiplier = max(p.multiplier, 1)
	b.RandomizationFactor = 0.25
	return b
}

// attempts is how many times req may be sent.
func (p retryPolicy) attempts(req *http.Request) int {
	if replayable(req) {
		return p.maxAttempts
	}
	return 1
}

// replayable reports whether sending req twice has the effect of sending
// it once.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(HeaderIdempotencyKey) != ""
}

// send runs req under the retry policy. Intermediate responses are drained;
// the last one is returned with its body open.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	limit := c.policy.attempts(req)
	attempt := 0

	op := func() (*http.Response, error) {
		attempt++
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		failed := fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.service)
		if attempt >= limit {
			return resp, failed
		}

		wait, hinted := retryAfter(resp, time.Now())
		if hinted && wait > c.policy.maxInterval {
			// The backend asked for longer than a request may wait.
			return resp, backoff.Permanent(failed)
		}
		drain(resp)
		if hinted {
			return nil, &backoff.RetryAfterError{Duration: wait}
		}
		return nil, failed
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(c.policy.backOff()),
		backoff.WithMaxTries(uint(limit)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			c.logger.WarnContext(ctx, "retrying HTTP request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", limit),
				slog.Duration("backoff", wait),
				slog.Any("error", err),
			)
		}),
	)
}

// retryableStatus reports 429 and 5xx, the statuses worth another attempt.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// retryAfter parses a Retry-After header in either delta-seconds or
// HTTP-date form.
func retryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
