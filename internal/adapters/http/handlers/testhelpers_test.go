package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
)

const testAgent = "agent-1"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// newRequest builds a request from testAgent as the router would hand it
// over: chi params resolved and the agent id in the context. A string body
// is sent raw; anything else is encoded as JSON.
func newRequest(t *testing.T, method, target string, body any, params map[string]string) *http.Request {
	t.Helper()

	r := httptest.NewRequest(method, target, requestBody(t, body))
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(middleware.WithAgentID(ctx, testAgent))
}

func requestBody(t *testing.T, body any) io.Reader {
	t.Helper()

	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return strings.NewReader(b)
	default:
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(b); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		return buf
	}
}

func validTransaction() transaction.Transaction {
	return transaction.Transaction{
		ID:        "tx-1",
		TypeOf:    transaction.TypePlaceOrder,
		Agent:     action.Participant{TypeOf: "Person", ID: testAgent},
		Status:    transaction.StatusInProgress,
		StartDate: testTime,
		Expires:   testTime.Add(15 * time.Minute),
	}
}

func validAction() action.Action {
	end := testTime.Add(time.Second)
	return action.Action{
		ID:        "act-1",
		TypeOf:    action.TypeAuthorize,
		Status:    action.StatusCompleted,
		StartDate: testTime,
		EndDate:   &end,
		Agent:     action.Participant{TypeOf: "Person", ID: testAgent},
		Object:    json.RawMessage(`{"typeOf":"SeatReservation"}`),
		Result:    json.RawMessage(`{"reservationNumber":"R-1"}`),
		Purpose:   &action.Purpose{TypeOf: transaction.TypePlaceOrder, ID: "tx-1"},
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v; body = %s", err, rec.Body.String())
	}
	return result
}

// fieldErrors decodes a problem body into location → message.
func fieldErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != dto.ContentTypeProblem {
		t.Fatalf("Content-Type = %q, want %q", ct, dto.ContentTypeProblem)
	}
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	out := make(map[string]string, len(resp.Errors))
	for _, e := range resp.Errors {
		out[e.Location] = e.Message
	}
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
