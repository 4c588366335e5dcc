package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// AuthorizationHandler handles authorize and cancel requests for the seat
// reservation and point award steps of a transaction.
type AuthorizationHandler struct {
	seats  ports.ReservationService
	points ports.PointAwardService
}

// NewAuthorizationHandler creates a new AuthorizationHandler.
func NewAuthorizationHandler(seats ports.ReservationService, points ports.PointAwardService) *AuthorizationHandler {
	return &AuthorizationHandler{seats: seats, points: points}
}

// AuthorizeSeatReservation handles
// POST /api/v1/transactions/placeOrder/{transactionId}/actions/authorize/seatReservation.
func (h *AuthorizationHandler) AuthorizeSeatReservation(w http.ResponseWriter, r *http.Request) {
	txID, err := pathParam(r, ParamTransactionID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AuthorizeSeatReservationRequest
	if !bind(w, r, &req) {
		return
	}

	a, err := h.seats.Authorize(r.Context(), req.ToParams(agentID(r), txID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToActionResponse(a))
}

// CancelSeatReservation handles
// DELETE /api/v1/transactions/placeOrder/{transactionId}/actions/authorize/seatReservation/{actionId}.
func (h *AuthorizationHandler) CancelSeatReservation(w http.ResponseWriter, r *http.Request) {
	txID, actionID, ok := actionPath(w, r)
	if !ok {
		return
	}

	err := h.seats.Cancel(r.Context(), ports.CancelSeatReservationParams{
		AgentID:       agentID(r),
		TransactionID: txID,
		ActionID:      actionID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AuthorizePointAward handles
// POST /api/v1/transactions/placeOrder/{transactionId}/actions/authorize/pointAward.
func (h *AuthorizationHandler) AuthorizePointAward(w http.ResponseWriter, r *http.Request) {
	txID, err := pathParam(r, ParamTransactionID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AuthorizePointAwardRequest
	if !bind(w, r, &req) {
		return
	}

	a, err := h.points.Authorize(r.Context(), req.ToParams(agentID(r), txID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToActionResponse(a))
}

// CancelPointAward handles
// DELETE /api/v1/transactions/placeOrder/{transactionId}/actions/authorize/pointAward/{actionId}.
func (h *AuthorizationHandler) CancelPointAward(w http.ResponseWriter, r *http.Request) {
	txID, actionID, ok := actionPath(w, r)
	if !ok {
		return
	}

	err := h.points.Cancel(r.Context(), ports.CancelPointAwardParams{
		AgentID:       agentID(r),
		TransactionID: txID,
		ActionID:      actionID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// actionPath reads the transaction and action ids of a cancel route. On
// failure it writes the error response and returns false.
func actionPath(w http.ResponseWriter, r *http.Request) (txID, actionID string, ok bool) {
	txID, err := pathParam(r, ParamTransactionID)
	if err == nil {
		actionID, err = pathParam(r, ParamActionID)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return "", "", false
	}
	return txID, actionID, true
}
