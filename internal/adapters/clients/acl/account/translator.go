package account

import "github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"

// ToDepositRequest converts a domain deposit to the backend schema. The
// orchestrator transaction id is the idempotency identifier.
func ToDepositRequest(req ports.DepositRequest) TransactionRequestDTO {
	return TransactionRequestDTO{
		TypeOf:      TypeDeposit,
		Identifier:  TypeDeposit + ":" + req.TransactionID + ":" + req.AccountNumber,
		Agent:       AgentDTO{TypeOf: "Agent", ID: req.AgentID},
		Object:      TransactionObject{AccountNumber: req.AccountNumber, Amount: req.Amount},
		Description: req.Description,
	}
}

// ToWithdrawRequest converts a domain withdrawal to the backend schema.
func ToWithdrawRequest(req ports.WithdrawRequest) TransactionRequestDTO {
	return TransactionRequestDTO{
		TypeOf:      TypeWithdraw,
		Identifier:  TypeWithdraw + ":" + req.TransactionID + ":" + req.AccountNumber,
		Agent:       AgentDTO{TypeOf: "Agent", ID: req.AgentID},
		Object:      TransactionObject{AccountNumber: req.AccountNumber, Amount: req.Amount},
		Description: req.Description,
	}
}

// ToDomainTransaction converts a backend TransactionDTO to a pending
// account transaction.
func ToDomainTransaction(dto *TransactionDTO) *ports.AccountTransaction {
	return &ports.AccountTransaction{ID: dto.ID, TypeOf: dto.TypeOf}
}
