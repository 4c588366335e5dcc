package boxoffice

import (
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
)

// legacyTimeLayout is the box office's local timestamp format. Times are
// always sent in UTC.
const legacyTimeLayout = time.DateTime

// ToTentativeRequest converts a domain reservation request to the legacy
// CreateTentative schema.
func ToTentativeRequest(transactionID string, req action.SeatReservationRequest) TentativeRequestDTO {
	seats := make([]LegacySeatDTO, len(req.Seats))
	for i, s := range req.Seats {
		seats[i] = LegacySeatDTO{TicketCode: s.TicketTypeID, Section: s.SeatSection, SeatNo: s.SeatNumber}
	}
	return TentativeRequestDTO{
		PerformanceID: req.EventID,
		TransactionID: transactionID,
		ExpiresAt:     req.Expires.UTC().Format(legacyTimeLayout),
		Seats:         seats,
	}
}

// ToDomainReservation converts a legacy TentativeDTO to the stable response
// recorded in the ledger. The temporary reserve number stands in for the
// reservation number.
func ToDomainReservation(dto *TentativeDTO) *action.SeatReservationResponse {
	seats := make([]action.ReservedSeat, len(dto.Seats))
	for i, s := range dto.Seats {
		seats[i] = action.ReservedSeat{
			TicketTypeID: s.TicketCode,
			SeatSection:  s.Section,
			SeatNumber:   s.SeatNo,
			Price:        s.Amount,
		}
	}
	return &action.SeatReservationResponse{
		ReservationNumber: dto.TmpReserveNum,
		Seats:             seats,
		TotalPrice:        dto.TotalAmount,
	}
}
