package reservation

import (
	"fmt"
	"slices"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/event"
)

// ToDomainEvent converts a backend EventDTO to a domain Event. The allocator
// is passed through unchecked; callers decide what an unknown one means.
func ToDomainEvent(dto *EventDTO) (*event.Event, error) {
	start, err := time.Parse(time.RFC3339, dto.StartDate)
	if err != nil {
		return nil, fmt.Errorf("event %s: parsing startDate %q: %w", dto.ID, dto.StartDate, err)
	}

	ev := &event.Event{
		ID:          dto.ID,
		Name:        dto.Name,
		StartDate:   start.UTC(),
		Allocator:   event.Allocator(dto.SeatAllocator),
		TicketTypes: make([]event.TicketType, 0, len(dto.TicketTypes)),
	}
	for _, tt := range dto.TicketTypes {
		category := ""
		if tt.Category != nil {
			category = tt.Category.CodeValue
		}
		ev.TicketTypes = append(ev.TicketTypes, event.TicketType{
			ID:       tt.Identifier,
			Name:     tt.Name,
			Price:    tt.PriceSpecification.Price,
			Category: category,
		})
	}
	return ev, nil
}

// ToDomainSeats converts a backend SeatListDTO to seat availability. A seat
// is available when any of its offers is in stock.
func ToDomainSeats(dto SeatListDTO) []event.Seat {
	seats := make([]event.Seat, len(dto.Seats))
	for i, s := range dto.Seats {
		seats[i] = event.Seat{
			Section: s.Section,
			Number:  s.SeatNumber,
			Available: slices.ContainsFunc(s.Offers, func(o OfferDTO) bool {
				return o.Availability == AvailabilityInStock
			}),
		}
	}
	return seats
}

// ToReservationRequest converts a domain reservation request to the backend
// CreateReservation schema.
func ToReservationRequest(transactionID string, req action.SeatReservationRequest) ReservationRequestDTO {
	offers := make([]AcceptedOfferDTO, len(req.Seats))
	for i, s := range req.Seats {
		offers[i] = AcceptedOfferDTO{
			TicketTypeID: s.TicketTypeID,
			SeatSection:  s.SeatSection,
			SeatNumber:   s.SeatNumber,
		}
	}
	return ReservationRequestDTO{
		TransactionID:  transactionID,
		EventID:        req.EventID,
		Expires:        req.Expires.UTC().Format(time.RFC3339),
		AcceptedOffers: offers,
	}
}

// ToDomainReservation converts a backend ReservationDTO to the stable
// response recorded in the ledger.
func ToDomainReservation(dto *ReservationDTO) *action.SeatReservationResponse {
	seats := make([]action.ReservedSeat, len(dto.SubReservation))
	for i, s := range dto.SubReservation {
		seats[i] = action.ReservedSeat{
			TicketTypeID: s.TicketTypeID,
			SeatSection:  s.SeatSection,
			SeatNumber:   s.SeatNumber,
			Price:        s.Price,
		}
	}
	return &action.SeatReservationResponse{
		ReservationNumber: dto.ReservationNumber,
		Seats:             seats,
		TotalPrice:        dto.TotalPrice,
	}
}
