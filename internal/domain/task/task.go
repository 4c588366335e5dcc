// Package task defines deferred work items: their closed set of names, the
// per-name data payloads, and the execution history the queue records.
package task

import (
	"encoding/json"
	"slices"
	"time"
)

// Status is the lifecycle state of a Task.
type Status string

const (
	StatusReady    Status = "Ready"
	StatusRunning  Status = "Running"
	StatusExecuted Status = "Executed"
	StatusAborted  Status = "Aborted"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusReady, StatusRunning, StatusExecuted, StatusAborted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Name selects the handler that executes a task.
type Name string

const (
	NameConfirmReservation Name = "ConfirmReservation"
	NameCancelReservation  Name = "CancelReservation"
	NameGivePointAward     Name = "GivePointAward"
	NameReturnPointAward   Name = "ReturnPointAward"
	NameSendEmailMessage   Name = "SendEmailMessage"
	NameTriggerWebhook     Name = "TriggerWebhook"
	NameVoidPlaceOrder     Name = "VoidPlaceOrder"
)

var names = []Name{
	NameConfirmReservation,
	NameCancelReservation,
	NameGivePointAward,
	NameReturnPointAward,
	NameSendEmailMessage,
	NameTriggerWebhook,
	NameVoidPlaceOrder,
}

// Names returns every known task name.
func Names() []Name {
	return slices.Clone(names)
}

// IsValid reports whether n is a known task name.
func (n Name) IsValid() bool {
	return slices.Contains(names, n)
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return string(n)
}

// ExecutionError is the failure captured for one attempt.
type ExecutionError struct {
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// ExecutionResult is one attempt in a task's history. Error is nil on success.
type ExecutionResult struct {
	ExecutedAt time.Time       `json:"executedAt"`
	EndDate    time.Time       `json:"endDate"`
	Error      *ExecutionError `json:"error"`
}

// Task is a durable unit of deferred work.
type Task struct {
	ID                     string
	Name                   Name
	Project                string
	Status                 Status
	RunsAt                 time.Time
	RemainingNumberOfTries int
	NumberOfTried          int
	LastTriedAt            *time.Time
	Data                   json.RawMessage
	ExecutionResults       []ExecutionResult
}

// Attributes is the input to Save.
type Attributes struct {
	Name                   Name
	Project                string
	Status                 Status
	RunsAt                 time.Time
	RemainingNumberOfTries int
	Data                   json.RawMessage
}

// ClaimConditions select which task ExecuteOneByName may claim.
type ClaimConditions struct {
	Project string
	Name    Name
}

// Claimable reports whether t could be claimed under c at now.
func (c ClaimConditions) Claimable(t *Task, now time.Time) bool {
	if t.Status != StatusReady || t.Name != c.Name || t.RunsAt.After(now) {
		return false
	}
	return c.Project == "" || t.Project == c.Project
}
