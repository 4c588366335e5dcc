package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
)

// ContentTypeProblem is the media type of every error body.
const ContentTypeProblem = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document. Code is an extension member
// carrying a machine-readable reason when one is known.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Code     string        `json:"code,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemRule pairs an error class with its response status and code. An
// empty code leaves the decision to the remote service, if any.
type problemRule struct {
	target error
	status int
	code   string
}

// problemRules is evaluated top to bottom; the first matching status wins and
// the first matching non-empty code wins. Refinements of ErrConflict sit
// ahead of it so that their code is not lost.
var problemRules = []problemRule{
	{target: domain.ErrValidation, status: http.StatusBadRequest},
	{target: domain.ErrNotFound, status: http.StatusNotFound},
	{target: domain.ErrForbidden, status: http.StatusForbidden},
	{target: domain.ErrAlreadyInProgress, status: http.StatusConflict, code: "AlreadyInProgress"},
	{target: domain.ErrLimitExceeded, status: http.StatusConflict, code: "RateLimitExceeded"},
	{target: domain.ErrConflict, status: http.StatusConflict},
	{target: domain.ErrUnavailable, status: http.StatusBadGateway},
	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, code: "Timeout"},
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
		Code:     code,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err with its status.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes resp with resp.Status.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// classify walks problemRules. A remote failure without a local code keeps
// the remote code, or its name when the remote sent none.
func classify(err error) (int, string) {
	status := 0
	code := ""
	for _, rule := range problemRules {
		if !errors.Is(err, rule.target) {
			continue
		}
		if status == 0 {
			status = rule.status
		}
		if code == "" {
			code = rule.code
		}
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}
	var ext *domain.ExternalError
	if code == "" && errors.As(err, &ext) {
		code = cmp.Or(ext.Code, ext.Name)
	}
	return status, code
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
