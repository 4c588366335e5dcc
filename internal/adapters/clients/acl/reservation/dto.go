// Package reservation implements the Anti-Corruption Layer translators for
// the reservation backend's event, seat and reservation resources.
package reservation

// EventDTO matches the backend Event schema.
type EventDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	StartDate     string          `json:"startDate"`
	SeatAllocator string          `json:"seatAllocator"`
	TicketTypes   []TicketTypeDTO `json:"ticketTypes"`
}

// TicketTypeDTO matches the backend TicketType schema.
type TicketTypeDTO struct {
	Identifier         string                `json:"identifier"`
	Name               string                `json:"name"`
	PriceSpecification PriceSpecificationDTO `json:"priceSpecification"`
	Category           *CategoryCodeDTO      `json:"category,omitempty"`
}

// PriceSpecificationDTO carries a price in minor units.
type PriceSpecificationDTO struct {
	Price    int64  `json:"price"`
	Currency string `json:"priceCurrency,omitempty"`
}

// CategoryCodeDTO names a seating category.
type CategoryCodeDTO struct {
	CodeValue string `json:"codeValue"`
}

// SeatListDTO matches the backend SeatList schema.
type SeatListDTO struct {
	Seats []SeatDTO `json:"seats"`
}

// SeatDTO is one seat with its offer availability.
type SeatDTO struct {
	Section    string     `json:"section"`
	SeatNumber string     `json:"seatNumber"`
	Offers     []OfferDTO `json:"offers"`
}

// OfferDTO is the availability of a seat.
type OfferDTO struct {
	Availability string `json:"availability"`
}

// AvailabilityInStock marks a seat that can still be reserved.
const AvailabilityInStock = "InStock"

// ReservationRequestDTO matches the backend CreateReservation schema.
type ReservationRequestDTO struct {
	TransactionID  string             `json:"transactionId"`
	EventID        string             `json:"eventId"`
	Expires        string             `json:"expires"`
	AcceptedOffers []AcceptedOfferDTO `json:"acceptedOffers"`
}

// AcceptedOfferDTO selects one seat for one ticket type.
type AcceptedOfferDTO struct {
	TicketTypeID string `json:"ticketTypeId"`
	SeatSection  string `json:"seatSection"`
	SeatNumber   string `json:"seatNumber"`
}

// ReservationDTO matches the backend Reservation schema.
type ReservationDTO struct {
	ReservationNumber string              `json:"reservationNumber"`
	SubReservation    []SubReservationDTO `json:"subReservation"`
	TotalPrice        int64               `json:"totalPrice"`
}

// SubReservationDTO is one held seat within a reservation.
type SubReservationDTO struct {
	TicketTypeID string `json:"ticketTypeId"`
	SeatSection  string `json:"seatSection"`
	SeatNumber   string `json:"seatNumber"`
	Price        int64  `json:"price"`
}
