// Package account implements the Anti-Corruption Layer translators for the
// point-account backend's two-phase transaction resources.
package account

// Transaction types understood by the backend.
const (
	TypeDeposit  = "Deposit"
	TypeWithdraw = "Withdraw"
)

// TransactionRequestDTO matches the backend StartTransaction schema.
type TransactionRequestDTO struct {
	TypeOf      string            `json:"typeOf"`
	Identifier  string            `json:"identifier"`
	Agent       AgentDTO          `json:"agent"`
	Object      TransactionObject `json:"object"`
	Description string            `json:"description,omitempty"`
}

// AgentDTO identifies who asked for the transaction.
type AgentDTO struct {
	TypeOf string `json:"typeOf"`
	ID     string `json:"id"`
}

// TransactionObject is the account and amount a transaction moves.
type TransactionObject struct {
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
}

// TransactionDTO matches the backend Transaction schema.
type TransactionDTO struct {
	ID     string `json:"id"`
	TypeOf string `json:"typeOf"`
	Status string `json:"status,omitempty"`
}
