package account

import (
	"testing"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

func TestToDepositRequest(t *testing.T) {
	t.Parallel()

	got := ToDepositRequest(ports.DepositRequest{
		TransactionID: "tx-1",
		AccountNumber: "ACC-1",
		Amount:        100,
		Description:   "ticket purchase",
		AgentID:       "agent-1",
	})

	if got.TypeOf != TypeDeposit {
		t.Errorf("TypeOf = %q, want %q", got.TypeOf, TypeDeposit)
	}
	if got.Identifier != "Deposit:tx-1:ACC-1" {
		t.Errorf("Identifier = %q", got.Identifier)
	}
	if got.Object != (TransactionObject{AccountNumber: "ACC-1", Amount: 100}) {
		t.Errorf("Object = %+v", got.Object)
	}
	if got.Agent.ID != "agent-1" || got.Description != "ticket purchase" {
		t.Errorf("Agent/Description = %+v/%q", got.Agent, got.Description)
	}
}

func TestToWithdrawRequest(t *testing.T) {
	t.Parallel()

	got := ToWithdrawRequest(ports.WithdrawRequest{TransactionID: "tx-1", AccountNumber: "ACC-1", Amount: 40})

	if got.TypeOf != TypeWithdraw || got.Identifier != "Withdraw:tx-1:ACC-1" || got.Object.Amount != 40 {
		t.Errorf("got = %+v", got)
	}
}

func TestToDomainTransaction(t *testing.T) {
	t.Parallel()

	got := ToDomainTransaction(&TransactionDTO{ID: "pt-1", TypeOf: TypeDeposit, Status: "InProgress"})
	if got.ID != "pt-1" || got.TypeOf != TypeDeposit {
		t.Errorf("got = %+v", got)
	}
}
