package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
)

// Path parameter names shared with the router.
const (
	ParamTransactionID = "transactionId"
	ParamActionID      = "actionId"
	ParamOrderNumber   = "orderNumber"
)

// maxBodyBytes caps every request document.
const maxBodyBytes = 1 << 20

// fieldBody is the validation field used for problems with the document as
// a whole rather than one member of it.
const fieldBody = "body"

// pathParam extracts a required chi URL parameter.
func pathParam(r *http.Request, param string) (string, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	if raw == "" {
		return "", domain.NewValidationError(param, domain.MsgRequired)
	}
	return raw, nil
}

// agentID returns the caller stored by the AgentID middleware.
func agentID(r *http.Request) string {
	return middleware.AgentIDFromContext(r.Context())
}

// respond writes v as the JSON body with status. Encoding failures happen
// after the status line is out, so they are only logged.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// validatable is implemented by request DTOs.
type validatable interface {
	Validate() error
}

// bind decodes the request document into dst and validates it. On failure
// it writes the problem response and returns false.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := readBody(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// readBody decodes exactly one JSON document. Decoder failures become
// validation errors naming the offending member where one is known.
func readBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		return domain.NewValidationError(fieldBody, "must contain a single JSON document")
	}

	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return domain.NewValidationError(fieldBody, domain.MsgRequired)
	case errors.As(err, &sizeErr):
		return domain.NewValidationError(fieldBody, fmt.Sprintf("must not exceed %d bytes", sizeErr.Limit))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.NewValidationError(typeErr.Field, "cannot be a JSON "+typeErr.Value)
	default:
		return domain.NewValidationError(fieldBody, "invalid JSON")
	}
}
