package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
)

func TestStartParams_Validate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		params StartParams
		fields []string
	}{
		{
			name:   "valid",
			params: StartParams{Agent: action.Participant{ID: "agent-1"}, Expires: now.Add(time.Minute)},
		},
		{
			name:   "missing agent and past expiry",
			params: StartParams{Expires: now},
			fields: []string{"agent.id", "expires"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.params.Validate(now)
			if len(tt.fields) == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			for _, f := range tt.fields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q, got %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestTransaction_Helpers(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tx := &Transaction{
		ID:          "tx-1",
		TypeOf:      TypePlaceOrder,
		Agent:       action.Participant{ID: "agent-1"},
		Expires:     now.Add(time.Minute),
		OrderNumber: "ORD-1",
	}

	if !tx.OwnedBy("agent-1") || tx.OwnedBy("agent-2") {
		t.Error("OwnedBy() mismatch")
	}
	if tx.IsExpired(now) {
		t.Error("IsExpired(now) = true, want false")
	}
	if !tx.IsExpired(now.Add(time.Minute)) {
		t.Error("IsExpired(expires) = false, want true")
	}

	p := tx.Purpose()
	if p.TypeOf != TypePlaceOrder || p.ID != "tx-1" || p.OrderNumber != "ORD-1" {
		t.Errorf("Purpose() = %+v", p)
	}
}
