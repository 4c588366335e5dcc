package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// TransactionHandler handles the place-order transaction lifecycle.
type TransactionHandler struct {
	orders ports.OrderService
}

// NewTransactionHandler creates a new TransactionHandler with the given
// service port.
func NewTransactionHandler(orders ports.OrderService) *TransactionHandler {
	return &TransactionHandler{orders: orders}
}

// Start handles POST /api/v1/transactions/placeOrder/start.
func (h *TransactionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartTransactionRequest
	if !bind(w, r, &req) {
		return
	}

	tx, err := h.orders.Start(r.Context(), req.ToParams(agentID(r)))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToTransactionResponse(tx))
}

// Confirm handles PUT /api/v1/transactions/placeOrder/{transactionId}/confirm.
func (h *TransactionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamTransactionID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ConfirmTransactionRequest
	if !bind(w, r, &req) {
		return
	}

	result, err := h.orders.Confirm(r.Context(), ports.ConfirmOrderParams{
		AgentID:       agentID(r),
		TransactionID: id,
		Email:         req.Email,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToConfirmTransactionResponse(result))
}

// Cancel handles PUT /api/v1/transactions/placeOrder/{transactionId}/cancel.
func (h *TransactionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamTransactionID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.orders.Void(r.Context(), agentID(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Return handles PUT /api/v1/transactions/placeOrder/{transactionId}/return.
// The reversal runs asynchronously, so the queued tasks are returned with 202.
func (h *TransactionHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamTransactionID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.orders.Return(r.Context(), agentID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusAccepted, dto.ToTaskListResponse(tasks))
}
