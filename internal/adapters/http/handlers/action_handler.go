package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// ActionHandler serves ledger searches.
type ActionHandler struct {
	queries ports.ActionQueryService
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(queries ports.ActionQueryService) *ActionHandler {
	return &ActionHandler{queries: queries}
}

// ListByTransaction handles GET /api/v1/transactions/placeOrder/{transactionId}/actions.
func (h *ActionHandler) ListByTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamTransactionID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	actions, err := h.queries.ListByTransaction(r.Context(), agentID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToActionListResponse(actions))
}

// ListByOrderNumber handles GET /api/v1/orders/{orderNumber}/actions.
func (h *ActionHandler) ListByOrderNumber(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := pathParam(r, ParamOrderNumber)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	actions, err := h.queries.ListByOrderNumber(r.Context(), agentID(r), orderNumber)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToActionListResponse(actions))
}
