package action

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
)

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusActive, true},
		{StatusCompleted, true},
		{StatusCanceled, true},
		{StatusFailed, true},
		{"", false},
		{"Active", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	if StatusActive.IsTerminal() {
		t.Error("StatusActive.IsTerminal() = true, want false")
	}
	for _, s := range []Status{StatusCompleted, StatusCanceled, StatusFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", s)
		}
	}
}

func TestType_IsValid(t *testing.T) {
	t.Parallel()

	if !TypeAuthorize.IsValid() {
		t.Error("TypeAuthorize.IsValid() = false, want true")
	}
	if Type("PayAction").IsValid() {
		t.Error(`Type("PayAction").IsValid() = true, want false`)
	}
}

func TestAttributes_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Attributes {
		return Attributes{
			TypeOf:  TypeAuthorize,
			Agent:   Participant{TypeOf: "Person", ID: "agent-1"},
			Object:  json.RawMessage(`{"typeOf":"SeatReservation"}`),
			Purpose: &Purpose{TypeOf: "PlaceOrder", ID: "tx-1"},
		}
	}

	t.Run("valid attributes", func(t *testing.T) {
		t.Parallel()
		a := valid()
		if err := a.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Attributes)
		field  string
	}{
		{"unknown type", func(a *Attributes) { a.TypeOf = "PayAction" }, "typeOf"},
		{"missing agent", func(a *Attributes) { a.Agent.ID = "  " }, "agent.id"},
		{"purpose without type", func(a *Attributes) { a.Purpose.TypeOf = "" }, "purpose.typeOf"},
		{"malformed object", func(a *Attributes) { a.Object = json.RawMessage(`{`) }, "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := valid()
			tt.mutate(&a)
			requireValidationField(t, a.Validate(), tt.field)
		})
	}
}

func TestAction_ObjectType(t *testing.T) {
	t.Parallel()

	a := &Action{Object: json.RawMessage(`{"typeOf":"PointAward","orderNumber":"ORD-1"}`)}
	if got := a.ObjectType(); got != ObjectPointAward {
		t.Errorf("ObjectType() = %q, want %q", got, ObjectPointAward)
	}
	if got := ObjectOrderNumber(a.Object); got != "ORD-1" {
		t.Errorf("ObjectOrderNumber() = %q, want %q", got, "ORD-1")
	}

	empty := &Action{}
	if got := empty.ObjectType(); got != "" {
		t.Errorf("ObjectType() on empty object = %q, want empty", got)
	}
}

func TestDecodeResult(t *testing.T) {
	t.Parallel()

	result, err := Encode(SeatReservationResult{
		Allocator:         "catalog",
		ReservationNumber: "R-100",
		Price:             2500,
		ResponseBody:      SeatReservationResponse{ReservationNumber: "R-100"},
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	t.Run("completed action", func(t *testing.T) {
		t.Parallel()
		a := &Action{ID: "a1", Status: StatusCompleted, Result: result}
		got, err := DecodeResult[SeatReservationResult](a)
		if err != nil {
			t.Fatalf("DecodeResult() error = %v", err)
		}
		if got.ReservationNumber != "R-100" {
			t.Errorf("ReservationNumber = %q, want %q", got.ReservationNumber, "R-100")
		}
	})

	t.Run("active action has no result", func(t *testing.T) {
		t.Parallel()
		a := &Action{ID: "a1", Status: StatusActive}
		if _, err := DecodeResult[SeatReservationResult](a); err == nil {
			t.Error("DecodeResult() error = nil, want error")
		}
	})
}

func TestPurposeConditions(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a := &Action{
		TypeOf:    TypeAuthorize,
		StartDate: now,
		Purpose:   &Purpose{TypeOf: "PlaceOrder", ID: "tx-1", OrderNumber: "ORD-9"},
	}

	tests := []struct {
		name  string
		conds PurposeConditions
		want  bool
	}{
		{"purpose type only", PurposeConditions{Purpose: PurposeFilter{TypeOf: "PlaceOrder"}}, true},
		{"purpose type and id", PurposeConditions{Purpose: PurposeFilter{TypeOf: "PlaceOrder", ID: "tx-1"}}, true},
		{"different purpose id", PurposeConditions{Purpose: PurposeFilter{TypeOf: "PlaceOrder", ID: "tx-2"}}, false},
		{"different action type", PurposeConditions{TypeOf: TypeSend, Purpose: PurposeFilter{TypeOf: "PlaceOrder"}}, false},
		{"different purpose type", PurposeConditions{Purpose: PurposeFilter{TypeOf: "ReturnOrder"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.conds.Matches(a); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}

	if !MatchesOrderNumber(a, "ORD-9") {
		t.Error("MatchesOrderNumber(purpose) = false, want true")
	}
	if MatchesOrderNumber(a, "") {
		t.Error(`MatchesOrderNumber("") = true, want false`)
	}

	requireValidationField(t, PurposeConditions{}.Validate(), "purpose.typeOf")
}
