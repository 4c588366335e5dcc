package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
	"github.com/jsamuelsen11/boxoffice-orchestrator/mocks"
)

type authorizationFixture struct {
	h      *handlers.AuthorizationHandler
	seats  *mocks.MockReservationService
	points *mocks.MockPointAwardService
}

func newAuthorizationHandler(t *testing.T) authorizationFixture {
	t.Helper()
	seats := mocks.NewMockReservationService(t)
	points := mocks.NewMockPointAwardService(t)
	return authorizationFixture{
		h:      handlers.NewAuthorizationHandler(seats, points),
		seats:  seats,
		points: points,
	}
}

var actionParams = map[string]string{handlers.ParamTransactionID: "tx-1", handlers.ParamActionID: "act-1"}

const (
	seatPath  = "/api/v1/transactions/placeOrder/tx-1/actions/authorize/seatReservation"
	pointPath = "/api/v1/transactions/placeOrder/tx-1/actions/authorize/pointAward"
)

// --- Seat reservation ---

func TestAuthorizeSeatReservation_Success(t *testing.T) {
	t.Parallel()
	f := newAuthorizationHandler(t)

	a := validAction()
	f.seats.EXPECT().Authorize(mock.Anything, mock.MatchedBy(func(p ports.AuthorizeSeatReservationParams) bool {
		return p.AgentID == testAgent && p.TransactionID == "tx-1" && p.EventID == "ev-1" &&
			len(p.Seats) == 2 && p.Seats[1].SeatSection == "W"
	})).Return(&a, nil)

	body := dto.AuthorizeSeatReservationRequest{
		EventID: "ev-1",
		Seats: []dto.SeatSelectorRequest{
			{TicketTypeID: "adult", SeatSection: "A", SeatNumber: "1"},
			{TicketTypeID: "wheelchair", SeatSection: "W"},
		},
	}
	rec := httptest.NewRecorder()
	f.h.AuthorizeSeatReservation(rec, newRequest(t, http.MethodPost, seatPath, body, txParams))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ActionResponse](t, rec)
	if resp.ID != "act-1" || resp.ActionStatus != "CompletedActionStatus" {
		t.Errorf("response = %+v", resp)
	}
}

func TestAuthorizeSeatReservation_ValidationError(t *testing.T) {
	t.Parallel()
	f := newAuthorizationHandler(t)

	rec := httptest.NewRecorder()
	f.h.AuthorizeSeatReservation(rec, newRequest(t, http.MethodPost, seatPath, dto.AuthorizeSeatReservationRequest{}, txParams))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestAuthorizeSeatReservation_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"quota used up", fmt.Errorf("wheelchair: %w", domain.ErrLimitExceeded), http.StatusConflict, "RateLimitExceeded"},
		{"seat taken", &domain.ExternalError{Service: "reservation-api", Name: "Conflict", Code: "SeatTaken", Status: http.StatusConflict}, http.StatusConflict, "SeatTaken"},
		{"backend down", &domain.ExternalError{Service: "reservation-api", Name: "RequestFailed"}, http.StatusBadGateway, "RequestFailed"},
		{"transaction gone", domain.ErrNotFound, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newAuthorizationHandler(t)
			f.seats.EXPECT().Authorize(mock.Anything, mock.Anything).Return(nil, tt.err)

			body := dto.AuthorizeSeatReservationRequest{EventID: "ev-1", Seats: []dto.SeatSelectorRequest{{TicketTypeID: "adult"}}}
			rec := httptest.NewRecorder()
			f.h.AuthorizeSeatReservation(rec, newRequest(t, http.MethodPost, seatPath, body, txParams))

			requireStatus(t, rec, tt.wantStatus)
			if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestCancelSeatReservation_Success(t *testing.T) {
	t.Parallel()
	f := newAuthorizationHandler(t)

	f.seats.EXPECT().Cancel(mock.Anything, ports.CancelSeatReservationParams{
		AgentID:       testAgent,
		TransactionID: "tx-1",
		ActionID:      "act-1",
	}).Return(nil)

	rec := httptest.NewRecorder()
	f.h.CancelSeatReservation(rec, newRequest(t, http.MethodDelete, seatPath+"/act-1", nil, actionParams))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestCancelSeatReservation_MissingActionID(t *testing.T) {
	t.Parallel()
	f := newAuthorizationHandler(t)

	rec := httptest.NewRecorder()
	f.h.CancelSeatReservation(rec, newRequest(t, http.MethodDelete, seatPath+"/", nil, txParams))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Point award ---

func TestAuthorizePointAward_Success(t *testing.T) {
	t.Parallel()
	f := newAuthorizationHandler(t)

	a := validAction()
	f.points.EXPECT().Authorize(mock.Anything, ports.AuthorizePointAwardParams{
		AgentID:       testAgent,
		TransactionID: "tx-1",
		ProgramID:     "members",
		AccountNumber: "ACC-1",
		Amount:        100,
	}).Return(&a, nil)

	body := dto.AuthorizePointAwardRequest{ProgramID: "members", AccountNumber: "ACC-1", Amount: 100}
	rec := httptest.NewRecorder()
	f.h.AuthorizePointAward(rec, newRequest(t, http.MethodPost, pointPath, body, txParams))

	requireStatus(t, rec, http.StatusCreated)
}

func TestAuthorizePointAward_AlreadyInProgress(t *testing.T) {
	t.Parallel()
	f := newAuthorizationHandler(t)

	f.points.EXPECT().Authorize(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyInProgress)

	body := dto.AuthorizePointAwardRequest{ProgramID: "members", AccountNumber: "ACC-1", Amount: 100}
	rec := httptest.NewRecorder()
	f.h.AuthorizePointAward(rec, newRequest(t, http.MethodPost, pointPath, body, txParams))

	requireStatus(t, rec, http.StatusConflict)
	if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Code != "AlreadyInProgress" {
		t.Errorf("Code = %q, want AlreadyInProgress", resp.Code)
	}
}

func TestAuthorizePointAward_ValidationError(t *testing.T) {
	t.Parallel()
	f := newAuthorizationHandler(t)

	body := dto.AuthorizePointAwardRequest{ProgramID: "members", AccountNumber: "ACC-1", Amount: -5}
	rec := httptest.NewRecorder()
	f.h.AuthorizePointAward(rec, newRequest(t, http.MethodPost, pointPath, body, txParams))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCancelPointAward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"canceled", nil, http.StatusNoContent},
		{"other agent", domain.ErrForbidden, http.StatusForbidden},
		{"backend down", domain.ErrUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newAuthorizationHandler(t)
			f.points.EXPECT().Cancel(mock.Anything, ports.CancelPointAwardParams{
				AgentID:       testAgent,
				TransactionID: "tx-1",
				ActionID:      "act-1",
			}).Return(tt.err)

			rec := httptest.NewRecorder()
			f.h.CancelPointAward(rec, newRequest(t, http.MethodDelete, pointPath+"/act-1", nil, actionParams))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
