package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
)

const confirmPath = "/api/v1/transactions/placeOrder/tx-1/confirm"

func TestNewErrorResponse_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &domain.ValidationError{Fields: map[string]string{"eventId": "is required"}}, http.StatusBadRequest, ""},
		{"not found", domain.ErrNotFound, http.StatusNotFound, ""},
		{"wrapped not found", fmt.Errorf("loading transaction: %w", domain.ErrNotFound), http.StatusNotFound, ""},
		{"missing agent", domain.ErrForbidden, http.StatusForbidden, ""},
		{"plain conflict", domain.ErrConflict, http.StatusConflict, ""},
		{"already in progress", fmt.Errorf("registering: %w", domain.ErrAlreadyInProgress), http.StatusConflict, "AlreadyInProgress"},
		{"rate limit", domain.ErrLimitExceeded, http.StatusConflict, "RateLimitExceeded"},
		{"backend down", domain.ErrUnavailable, http.StatusBadGateway, ""},
		{"deadline", fmt.Errorf("request exceeded 8s: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Timeout"},
		{"unclassified", errors.New("oops"), http.StatusInternalServerError, ""},
		{
			name:       "remote conflict keeps remote code",
			err:        &domain.ExternalError{Service: "reservation-api", Name: "Conflict", Code: "SeatTaken", Status: http.StatusConflict},
			wantStatus: http.StatusConflict,
			wantCode:   "SeatTaken",
		},
		{
			name:       "remote 503 falls back to remote name",
			err:        &domain.ExternalError{Service: "reservation-api", Name: "Maintenance", Status: http.StatusServiceUnavailable},
			wantStatus: http.StatusBadGateway,
			wantCode:   "Maintenance",
		},
		{
			name:       "no response at all",
			err:        &domain.ExternalError{Service: "notify-api", Name: "RequestFailed"},
			wantStatus: http.StatusBadGateway,
			wantCode:   "RequestFailed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPut, confirmPath, nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestNewErrorResponse_DescribesRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPut, confirmPath+"?dryRun=true", nil)
	err := fmt.Errorf("transaction tx-1: %w", domain.ErrNotFound)

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want about:blank", got.Type)
	}
	if got.Instance != confirmPath+"?dryRun=true" {
		t.Errorf("Instance = %q, want the request URI", got.Instance)
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
	if got.Errors != nil {
		t.Errorf("Errors = %v, only validation failures list fields", got.Errors)
	}
}

func TestNewErrorResponse_FieldsSortedByLocation(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"seats[0].ticketTypeId": "is required",
		"eventId":               "is required",
		"seats":                 "must not be empty",
	}}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/placeOrder/start", nil)

	got := dto.NewErrorResponse(r, fmt.Errorf("start: %w", verr)).Errors

	want := []string{"body.eventId", "body.seats", "body.seats[0].ticketTypeId"}
	if len(got) != len(want) {
		t.Fatalf("len(Errors) = %d, want %d", len(got), len(want))
	}
	for i, loc := range want {
		if got[i].Location != loc {
			t.Errorf("Errors[%d].Location = %q, want %q", i, got[i].Location, loc)
		}
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/placeOrder/start", nil)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"email": "is required"}})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != dto.ContentTypeProblem {
		t.Errorf("Content-Type = %q, want %q", ct, dto.ContentTypeProblem)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Status != http.StatusBadRequest || resp.Type != "about:blank" {
		t.Errorf("Status/Type = %d/%q", resp.Status, resp.Type)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.email" || resp.Errors[0].Message != "is required" {
		t.Errorf("Errors = %+v, want body.email is required", resp.Errors)
	}
}

func TestWriteErrorResponse_OmitsEmptyCode(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/tx-1", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	for _, key := range []string{"code", "errors"} {
		if _, ok := raw[key]; ok {
			t.Errorf("body has %q, want it omitted: %s", key, w.Body.String())
		}
	}
}
