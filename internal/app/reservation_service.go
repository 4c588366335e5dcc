// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/ledger"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/saga"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/event"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/lock"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/telemetry"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time check that ReservationService implements ports.ReservationService.
var _ ports.ReservationService = (*ReservationService)(nil)

// ReservationDeps are the collaborators of a ReservationService.
type ReservationDeps struct {
	Transactions ports.TransactionRepository
	Actions      ports.ActionRepository
	Limiter      ports.RateLimiter
	Reservations ports.ReservationClient
	BoxOffice    ports.BoxOfficeClient
	RateLimit    config.RateLimitConfig
	Metrics      *telemetry.Metrics
	Now          func() time.Time
}

// ReservationService runs the seat-reservation saga: validate against live
// availability, take the category quota, allocate with the event's backend
// and record every step in the action ledger.
type ReservationService struct {
	transactions ports.TransactionRepository
	actions      ports.ActionRepository
	limiter      ports.RateLimiter
	reservations ports.ReservationClient
	boxOffice    ports.BoxOfficeClient
	rateLimit    config.RateLimitConfig
	metrics      *telemetry.Metrics
	now          func() time.Time
	logger       *slog.Logger
}

// NewReservationService creates a ReservationService. A nil logger discards
// output and a nil clock uses time.Now.
func NewReservationService(deps ReservationDeps, logger *slog.Logger) *ReservationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &ReservationService{
		transactions: deps.Transactions,
		actions:      deps.Actions,
		limiter:      deps.Limiter,
		reservations: deps.Reservations,
		boxOffice:    deps.BoxOffice,
		rateLimit:    deps.RateLimit,
		metrics:      deps.Metrics,
		now:          deps.Now,
		logger:       logger,
	}
}

// Authorize reserves seats for an InProgress transaction.
func (s *ReservationService) Authorize(ctx context.Context, params ports.AuthorizeSeatReservationParams) (*action.Action, error) {
	s.logger.InfoContext(ctx, "authorizing seat reservation",
		slog.String("transaction_id", params.TransactionID),
		slog.String("event_id", params.EventID),
		slog.Int("seats", len(params.Seats)),
	)

	tx, err := loadOwnedInProgress(ctx, s.transactions, params.AgentID, params.TransactionID, s.now())
	if err != nil {
		return nil, err
	}

	ev, err := s.reservations.GetEvent(ctx, params.EventID)
	if err != nil {
		s.logError(ctx, "failed to fetch event", "Authorize", tx.ID, err)
		return nil, err
	}
	if !ev.Allocator.IsValid() {
		return nil, domain.NewValidationError("event.allocator", fmt.Sprintf("unsupported: %q", ev.Allocator))
	}

	availability, err := s.reservations.SearchSeats(ctx, ev.ID)
	if err != nil {
		s.logError(ctx, "failed to search seats", "Authorize", tx.ID, err)
		return nil, err
	}

	seats, err := pickSeats(ev, availability, params.Seats)
	if err != nil {
		return nil, err
	}

	object, err := action.Encode(action.SeatReservationObject{
		TypeOf:    action.ObjectSeatReservation,
		EventID:   ev.ID,
		Allocator: string(ev.Allocator),
		Seats:     seats,
	})
	if err != nil {
		return nil, err
	}

	act, err := s.actions.Start(ctx, action.Attributes{
		TypeOf:  action.TypeAuthorize,
		Agent:   tx.Agent,
		Object:  object,
		Purpose: tx.Purpose(),
	})
	if err != nil {
		s.logError(ctx, "failed to start authorize action", "Authorize", tx.ID, err)
		return nil, err
	}

	comp := saga.New("ReservationService.Authorize", s.metrics)
	completed, err := s.reserve(ctx, comp, act.ID, tx, ev, seats)
	if err != nil {
		s.logError(ctx, "seat reservation failed", "Authorize", tx.ID, err, slog.String("action_id", act.ID))
		ledger.GiveUpQuietly(ctx, s.actions, action.TypeAuthorize, act.ID, err)
		comp.Run(ctx)
		return nil, err
	}
	return completed, nil
}

func (s *ReservationService) reserve(ctx context.Context, comp *saga.Compensator, actionID string, tx *transaction.Transaction, ev *event.Event, seats []action.SeatSelector) (*action.Action, error) {
	result, err := s.allocate(ctx, comp, tx, ev, seats)
	if err != nil {
		return nil, err
	}
	raw, err := action.Encode(result)
	if err != nil {
		return nil, err
	}
	return s.actions.Complete(ctx, action.TypeAuthorize, actionID, raw)
}

// allocate takes the category quotas and reserves the seats, registering the
// compensation of each step on comp.
func (s *ReservationService) allocate(ctx context.Context, comp *saga.Compensator, tx *transaction.Transaction, ev *event.Event, seats []action.SeatSelector) (*action.SeatReservationResult, error) {
	keys := s.rateLimitKeys(ev, seats)
	recorded := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := s.limiter.Lock(ctx, key, tx.ID); err != nil {
			if errors.Is(err, domain.ErrLimitExceeded) {
				s.metrics.RecordLockConflict(ctx, "rate_limit")
			}
			return nil, err
		}
		comp.Add("release rate limit "+key.String(), func(ctx context.Context) error {
			return s.limiter.Release(ctx, key, tx.ID)
		})
		recorded = append(recorded, key.String())
	}

	req := action.SeatReservationRequest{
		EventID: ev.ID,
		Seats:   seats,
		Expires: tx.Expires,
	}

	var (
		res *action.SeatReservationResponse
		err error
	)
	switch ev.Allocator {
	case event.AllocatorLegacy:
		res, err = s.boxOffice.CreateTentative(ctx, tx.ID, req)
	default:
		res, err = s.reservations.StartReservation(ctx, tx.ID, req)
	}
	if err != nil {
		return nil, err
	}
	comp.Add("release allocation "+res.ReservationNumber, func(ctx context.Context) error {
		return s.release(ctx, ev.Allocator, res.ReservationNumber)
	})

	return &action.SeatReservationResult{
		Allocator:         string(ev.Allocator),
		ReservationNumber: res.ReservationNumber,
		Price:             res.TotalPrice,
		RequestBody:       req,
		ResponseBody:      *res,
		RateLimitKeys:     recorded,
	}, nil
}

// rateLimitKeys returns one key per distinct rate-limited category among the
// requested ticket types. The bucket is the event start floored to the window.
func (s *ReservationService) rateLimitKeys(ev *event.Event, seats []action.SeatSelector) []lock.RateLimitKey {
	var categories []string
	for _, seat := range seats {
		tt, _ := ev.TicketType(seat.TicketTypeID)
		if s.rateLimit.Capacity(tt.Category) > 0 && !slices.Contains(categories, tt.Category) {
			categories = append(categories, tt.Category)
		}
	}
	slices.Sort(categories)

	keys := make([]lock.RateLimitKey, 0, len(categories))
	for _, category := range categories {
		keys = append(keys, lock.NewRateLimitKey(category, ev.StartDate, s.rateLimit.Window))
	}
	return keys
}

func (s *ReservationService) release(ctx context.Context, allocator event.Allocator, reservationNumber string) error {
	if allocator == event.AllocatorLegacy {
		return s.boxOffice.DeleteTentative(ctx, reservationNumber)
	}
	return s.reservations.CancelReservation(ctx, reservationNumber)
}

// Cancel reverses matching Completed seat authorizations. Each action is
// canceled in the ledger before its allocation is released, so the ledger
// never shows a Completed reservation whose seats are gone.
func (s *ReservationService) Cancel(ctx context.Context, params ports.CancelSeatReservationParams) error {
	s.logger.InfoContext(ctx, "canceling seat reservations",
		slog.String("transaction_id", params.TransactionID),
		slog.String("action_id", params.ActionID),
	)

	if params.AgentID != "" {
		if err := checkOwner(ctx, s.transactions, params.AgentID, params.TransactionID); err != nil {
			return err
		}
	}

	targets, err := completedAuthorizations(ctx, s.actions, params.TransactionID, params.ActionID, action.ObjectSeatReservation)
	if err != nil {
		s.logError(ctx, "failed to search authorizations", "Cancel", params.TransactionID, err)
		return err
	}

	var errs []error
	for i := range targets {
		if err := s.cancelOne(ctx, &targets[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *ReservationService) cancelOne(ctx context.Context, act *action.Action) error {
	result, err := action.DecodeResult[action.SeatReservationResult](act)
	if err != nil {
		return err
	}

	if _, err := s.actions.Cancel(ctx, action.TypeAuthorize, act.ID); err != nil {
		s.logError(ctx, "failed to cancel authorize action", "Cancel", purposeID(act), err, slog.String("action_id", act.ID))
		return err
	}

	if err := s.release(ctx, event.Allocator(result.Allocator), result.ReservationNumber); err != nil {
		if !domain.IsBenignExternal(err) {
			s.logError(ctx, "failed to release allocation", "Cancel", purposeID(act), err,
				slog.String("action_id", act.ID),
				slog.String("reservation_number", result.ReservationNumber),
			)
			return err
		}
		s.logger.InfoContext(ctx, "allocation already released",
			slog.String("action_id", act.ID),
			slog.String("reservation_number", result.ReservationNumber),
		)
	}

	// Slots are held by the transaction, not the action. Every seat
	// authorization of one transaction shares its slot, so cancelling one of
	// them frees the quota while the others still hold constrained seats.
	holder := purposeID(act)
	for _, raw := range result.RateLimitKeys {
		key, err := lock.ParseRateLimitKey(raw)
		if err != nil {
			s.logError(ctx, "skipping malformed rate limit key", "Cancel", holder, err, slog.String("key", raw))
			continue
		}
		if err := s.limiter.Release(ctx, key, holder); err != nil {
			s.logError(ctx, "failed to release rate limit slot", "Cancel", holder, err, slog.String("key", raw))
			return err
		}
	}
	return nil
}

func (s *ReservationService) logError(ctx context.Context, msg, operation, transactionID string, err error, attrs ...any) {
	args := append([]any{
		slog.String("operation", "ReservationService."+operation),
		slog.String("transaction_id", transactionID),
	}, attrs...)
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, msg, args...)
}

// pickSeats checks the requested seats against availability and fills in a
// seat for every selector that names none.
func pickSeats(ev *event.Event, availability []event.Seat, wanted []action.SeatSelector) ([]action.SeatSelector, error) {
	if len(wanted) == 0 {
		return nil, domain.NewValidationError("seats", domain.MsgRequired)
	}

	free := make(map[string]bool, len(availability))
	for _, seat := range availability {
		if seat.Available {
			free[seat.Key()] = true
		}
	}

	picked := make([]action.SeatSelector, 0, len(wanted))
	taken := make(map[string]bool, len(wanted))

	// Named seats first so that auto-picking never steals one of them.
	for i, sel := range wanted {
		field := fmt.Sprintf("seats[%d]", i)
		if _, ok := ev.TicketType(sel.TicketTypeID); !ok {
			return nil, domain.NewValidationError(field+".ticketTypeId", fmt.Sprintf("unknown ticket type %q", sel.TicketTypeID))
		}
		if sel.SeatNumber == "" {
			continue
		}
		key := event.Seat{Section: sel.SeatSection, Number: sel.SeatNumber}.Key()
		if !free[key] || taken[key] {
			return nil, domain.NewValidationError(field, fmt.Sprintf("seat %s is not available", key))
		}
		taken[key] = true
	}

	for _, sel := range wanted {
		if sel.SeatNumber == "" {
			i := slices.IndexFunc(availability, func(seat event.Seat) bool {
				return seat.Available && !taken[seat.Key()] &&
					(sel.SeatSection == "" || seat.Section == sel.SeatSection)
			})
			if i < 0 {
				return nil, domain.NewValidationError("seats", "not enough available seats")
			}
			sel.SeatSection = availability[i].Section
			sel.SeatNumber = availability[i].Number
			taken[availability[i].Key()] = true
		}
		picked = append(picked, sel)
	}
	return picked, nil
}
