// Package boxoffice implements the Anti-Corruption Layer translators for the
// legacy box office's tentative reservation resources.
package boxoffice

// TentativeRequestDTO matches the legacy CreateTentative schema.
type TentativeRequestDTO struct {
	PerformanceID string          `json:"performance_id"`
	TransactionID string          `json:"transaction_id"`
	ExpiresAt     string          `json:"expires_at"`
	Seats         []LegacySeatDTO `json:"seats"`
}

// LegacySeatDTO selects one seat in the legacy schema.
type LegacySeatDTO struct {
	TicketCode string `json:"ticket_code"`
	Section    string `json:"section"`
	SeatNo     string `json:"seat_no"`
	Amount     int64  `json:"amount,omitempty"`
}

// TentativeDTO matches the legacy Tentative schema.
type TentativeDTO struct {
	TmpReserveNum string          `json:"tmp_reserve_num"`
	Seats         []LegacySeatDTO `json:"seats"`
	TotalAmount   int64           `json:"total_amount"`
}
