// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// TransactionResponse represents a place-order transaction in HTTP responses.
type TransactionResponse struct {
	ID          string             `json:"id"`
	TypeOf      string             `json:"typeOf"`
	Status      string             `json:"status"`
	Agent       action.Participant `json:"agent"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate,omitempty"`
	Expires     string             `json:"expires"`
	OrderNumber string             `json:"orderNumber,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to an HTTP response DTO.
func ToTransactionResponse(t *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		TypeOf:      t.TypeOf,
		Status:      t.Status.String(),
		Agent:       t.Agent,
		StartDate:   t.StartDate.Format(time.RFC3339),
		EndDate:     formatOptional(t.EndDate),
		Expires:     t.Expires.Format(time.RFC3339),
		OrderNumber: t.OrderNumber,
	}
}

// ActionResponse represents a ledger action in HTTP responses. Object and
// result are passed through as recorded.
type ActionResponse struct {
	ID           string              `json:"id"`
	TypeOf       string              `json:"typeOf"`
	ActionStatus string              `json:"actionStatus"`
	StartDate    string              `json:"startDate"`
	EndDate      string              `json:"endDate,omitempty"`
	Agent        action.Participant  `json:"agent"`
	Recipient    *action.Participant `json:"recipient,omitempty"`
	Object       json.RawMessage     `json:"object,omitempty"`
	Result       json.RawMessage     `json:"result,omitempty"`
	Error        *action.Error       `json:"error,omitempty"`
	Purpose      *action.Purpose     `json:"purpose,omitempty"`
}

// ToActionResponse converts a domain Action to an HTTP response DTO.
func ToActionResponse(a *action.Action) ActionResponse {
	return ActionResponse{
		ID:           a.ID,
		TypeOf:       string(a.TypeOf),
		ActionStatus: string(a.Status),
		StartDate:    a.StartDate.Format(time.RFC3339),
		EndDate:      formatOptional(a.EndDate),
		Agent:        a.Agent,
		Recipient:    a.Recipient,
		Object:       a.Object,
		Result:       a.Result,
		Error:        a.Error,
		Purpose:      a.Purpose,
	}
}

// ActionListResponse represents a list of actions in HTTP responses.
type ActionListResponse struct {
	Actions []ActionResponse `json:"actions"`
	Count   int              `json:"count"`
}

// ToActionListResponse converts a slice of domain Actions to an HTTP list
// response DTO.
func ToActionListResponse(actions []action.Action) ActionListResponse {
	items := make([]ActionResponse, len(actions))
	for i := range actions {
		items[i] = ToActionResponse(&actions[i])
	}
	return ActionListResponse{
		Actions: items,
		Count:   len(items),
	}
}

// TaskResponse represents a queued task in HTTP responses. Task data is not
// exposed.
type TaskResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	RunsAt string `json:"runsAt"`
}

// ToTaskResponses converts queued domain Tasks to HTTP response DTOs.
func ToTaskResponses(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = TaskResponse{
			ID:     t.ID,
			Name:   string(t.Name),
			Status: string(t.Status),
			RunsAt: t.RunsAt.Format(time.RFC3339),
		}
	}
	return items
}

// ConfirmTransactionResponse is the confirmed transaction and the delivery
// tasks queued for it.
type ConfirmTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Tasks       []TaskResponse      `json:"tasks"`
}

// ToConfirmTransactionResponse converts a ports.ConfirmOrderResult to an HTTP
// response DTO.
func ToConfirmTransactionResponse(result *ports.ConfirmOrderResult) ConfirmTransactionResponse {
	return ConfirmTransactionResponse{
		Transaction: ToTransactionResponse(result.Transaction),
		Tasks:       ToTaskResponses(result.Tasks),
	}
}

// TaskListResponse represents tasks queued by a request.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskListResponse converts queued domain Tasks to an HTTP list response.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	return TaskListResponse{Tasks: ToTaskResponses(tasks), Count: len(tasks)}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
