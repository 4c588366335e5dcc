// Package acl is the anti-corruption layer between the orchestrator and
// its remote collaborators: the reservation backend, the point-account
// backend, the legacy box office, the notification service and webhook
// subscribers. Wire shapes and their translators live in the subpackages;
// request handling and error mapping shared by every client live here.
package acl

import (
	"cmp"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
)

// maxProblemBytes bounds how much of an error body is read.
const maxProblemBytes = 64 << 10

// problem is the RFC 9457 document the backends answer failures with.
// Code is their extension member for a machine-readable reason.
type problem struct {
	Title  string         `json:"title"`
	Detail string         `json:"detail"`
	Code   string         `json:"code"`
	Errors []problemField `json:"errors"`
}

type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError turns an unwanted response from service into a
// *domain.ExternalError. The remote title and code are kept for the action
// ledger; the status decides which domain sentinel it unwraps to.
func TranslateHTTPError(service string, resp *http.Response) error {
	p := readProblem(resp)
	statusText := http.StatusText(resp.StatusCode)

	msg := cmp.Or(p.Detail, statusText)
	if fields := p.fieldSummary(); fields != "" {
		msg += " (" + fields + ")"
	}

	return &domain.ExternalError{
		Service: service,
		Name:    cmp.Or(p.Title, strings.ReplaceAll(statusText, " ", ""), "UnexpectedStatus"),
		Code:    p.Code,
		Message: msg,
		Status:  resp.StatusCode,
	}
}

// requestFailed is the error for a call that got no response at all. A zero
// status unwraps to domain.ErrUnavailable.
func requestFailed(service string, err error) error {
	return &domain.ExternalError{Service: service, Name: "RequestFailed", Message: err.Error()}
}

// readProblem decodes a JSON error body. Anything else yields the zero
// problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/problem+json" && mediaType != "application/json") {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemBytes)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}

// fieldSummary renders the field errors as sorted "field: message" pairs
// without the "body." location prefix.
func (p problem) fieldSummary() string {
	parts := make([]string, 0, len(p.Errors))
	for _, f := range p.Errors {
		parts = append(parts, strings.TrimPrefix(f.Location, "body.")+": "+f.Message)
	}
	slices.Sort(parts)
	return strings.Join(parts, "; ")
}
