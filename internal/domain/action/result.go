package action

import (
	"encoding/json"
	"fmt"
	"time"
)

// SeatReservationObject is the object of an AuthorizeAction that reserves seats.
type SeatReservationObject struct {
	TypeOf      ObjectType     `json:"typeOf"`
	EventID     string         `json:"eventId"`
	Allocator   string         `json:"allocator"`
	Seats       []SeatSelector `json:"seats"`
	OrderNumber string         `json:"orderNumber,omitempty"`
}

// SeatSelector names one requested seat. SeatNumber may be empty when the
// caller lets the orchestrator pick.
type SeatSelector struct {
	TicketTypeID string `json:"ticketTypeId"`
	SeatSection  string `json:"seatSection,omitempty"`
	SeatNumber   string `json:"seatNumber,omitempty"`
}

// SeatReservationResult is the stable record of a completed seat reservation.
// RequestBody and ResponseBody hold the exact exchange with the allocator so
// that cancellation can reverse the same call.
type SeatReservationResult struct {
	Allocator         string                  `json:"allocator"`
	ReservationNumber string                  `json:"reservationNumber"`
	Price             int64                   `json:"price"`
	RequestBody       SeatReservationRequest  `json:"requestBody"`
	ResponseBody      SeatReservationResponse `json:"responseBody"`
	RateLimitKeys     []string                `json:"rateLimitKeys,omitempty"`
}

// SeatReservationRequest is the internal form of what was sent to the allocator.
type SeatReservationRequest struct {
	EventID string         `json:"eventId"`
	Seats   []SeatSelector `json:"seats"`
	Expires time.Time      `json:"expires"`
}

// SeatReservationResponse is the internal form of what the allocator answered.
type SeatReservationResponse struct {
	ReservationNumber string         `json:"reservationNumber"`
	Seats             []ReservedSeat `json:"seats"`
	TotalPrice        int64          `json:"totalPrice"`
}

// ReservedSeat is one seat the allocator holds for the reservation.
type ReservedSeat struct {
	TicketTypeID string `json:"ticketTypeId"`
	SeatSection  string `json:"seatSection"`
	SeatNumber   string `json:"seatNumber"`
	Price        int64  `json:"price"`
}

// PointAwardObject is the object of an AuthorizeAction that awards points.
type PointAwardObject struct {
	TypeOf        ObjectType `json:"typeOf"`
	ProgramID     string     `json:"programId"`
	AccountNumber string     `json:"accountNumber"`
	Amount        int64      `json:"amount"`
	Description   string     `json:"description,omitempty"`
}

// PointAwardResult is the stable record of an authorized point deposit.
type PointAwardResult struct {
	AccountNumber   string `json:"accountNumber"`
	Amount          int64  `json:"amount"`
	TransactionID   string `json:"transactionId"`
	TransactionType string `json:"transactionType"`
	LockKey         string `json:"lockKey,omitempty"`
}

// DeliveryResult is the result recorded by delivery actions (confirm, give,
// send, inform). Reference is whatever identifier the remote side returned.
type DeliveryResult struct {
	Service   string    `json:"service"`
	Reference string    `json:"reference,omitempty"`
	Status    int       `json:"status,omitempty"`
	Delivered time.Time `json:"delivered"`
}

// Encode marshals a result or object payload.
func Encode(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	return b, nil
}
