package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/ledger"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/saga"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/lock"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/telemetry"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time check that PointAwardService implements ports.PointAwardService.
var _ ports.PointAwardService = (*PointAwardService)(nil)

// PointAwardDeps are the collaborators of a PointAwardService.
type PointAwardDeps struct {
	Transactions ports.TransactionRepository
	Actions      ports.ActionRepository
	Locks        ports.LockStore
	Accounts     ports.AccountClient
	Metrics      *telemetry.Metrics
	Now          func() time.Time
}

// PointAwardService authorizes point incentives. The registration lock keeps
// an agent from holding two awards for the same program at once.
type PointAwardService struct {
	transactions ports.TransactionRepository
	actions      ports.ActionRepository
	locks        ports.LockStore
	accounts     ports.AccountClient
	metrics      *telemetry.Metrics
	now          func() time.Time
	logger       *slog.Logger
}

// NewPointAwardService creates a PointAwardService.
func NewPointAwardService(deps PointAwardDeps, logger *slog.Logger) *PointAwardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &PointAwardService{
		transactions: deps.Transactions,
		actions:      deps.Actions,
		locks:        deps.Locks,
		accounts:     deps.Accounts,
		metrics:      deps.Metrics,
		now:          deps.Now,
		logger:       logger,
	}
}

func validatePointAward(params ports.AuthorizePointAwardParams) error {
	fields := make(map[string]string)
	if strings.TrimSpace(params.ProgramID) == "" {
		fields["programId"] = domain.MsgRequired
	}
	if strings.TrimSpace(params.AccountNumber) == "" {
		fields["accountNumber"] = domain.MsgRequired
	}
	if params.Amount <= 0 {
		fields["amount"] = "must be positive"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Authorize holds the registration lock, records the award and starts the
// deposit on the account backend.
func (s *PointAwardService) Authorize(ctx context.Context, params ports.AuthorizePointAwardParams) (*action.Action, error) {
	s.logger.InfoContext(ctx, "authorizing point award",
		slog.String("transaction_id", params.TransactionID),
		slog.String("program_id", params.ProgramID),
	)

	if err := validatePointAward(params); err != nil {
		return nil, err
	}

	tx, err := loadOwnedInProgress(ctx, s.transactions, params.AgentID, params.TransactionID, s.now())
	if err != nil {
		return nil, err
	}

	comp := saga.New("PointAwardService.Authorize", s.metrics)

	key := lock.RegistrationKey(tx.Agent.ID, params.ProgramID)
	if err := s.locks.Lock(ctx, key, tx.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyInProgress) {
			s.metrics.RecordLockConflict(ctx, "registration")
		}
		s.logger.WarnContext(ctx, "registration lock not acquired",
			slog.String("operation", "PointAwardService.Authorize"),
			slog.String("transaction_id", tx.ID),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return nil, err
	}
	comp.Add("unlock "+key, func(ctx context.Context) error {
		return s.locks.Unlock(ctx, key)
	})

	object, err := action.Encode(action.PointAwardObject{
		TypeOf:        action.ObjectPointAward,
		ProgramID:     params.ProgramID,
		AccountNumber: params.AccountNumber,
		Amount:        params.Amount,
		Description:   params.Description,
	})
	if err != nil {
		comp.Run(ctx)
		return nil, err
	}

	act, err := s.actions.Start(ctx, action.Attributes{
		TypeOf:  action.TypeAuthorize,
		Agent:   tx.Agent,
		Object:  object,
		Purpose: tx.Purpose(),
	})
	if err != nil {
		s.logError(ctx, "failed to start authorize action", tx.ID, err)
		comp.Run(ctx)
		return nil, err
	}

	completed, err := s.deposit(ctx, comp, act.ID, tx, params, key)
	if err != nil {
		s.logError(ctx, "point award failed", tx.ID, err, slog.String("action_id", act.ID))
		ledger.GiveUpQuietly(ctx, s.actions, action.TypeAuthorize, act.ID, err)
		comp.Run(ctx)
		return nil, err
	}
	return completed, nil
}

func (s *PointAwardService) deposit(ctx context.Context, comp *saga.Compensator, actionID string, tx *transaction.Transaction, params ports.AuthorizePointAwardParams, key string) (*action.Action, error) {
	pending, err := s.accounts.StartDeposit(ctx, ports.DepositRequest{
		TransactionID: tx.ID,
		AccountNumber: params.AccountNumber,
		Amount:        params.Amount,
		Description:   params.Description,
		AgentID:       tx.Agent.ID,
	})
	if err != nil {
		return nil, err
	}
	comp.Add("cancel deposit "+pending.ID, func(ctx context.Context) error {
		return s.accounts.CancelTransaction(ctx, pending.ID)
	})

	raw, err := action.Encode(action.PointAwardResult{
		AccountNumber:   params.AccountNumber,
		Amount:          params.Amount,
		TransactionID:   pending.ID,
		TransactionType: pending.TypeOf,
		LockKey:         key,
	})
	if err != nil {
		return nil, err
	}
	return s.actions.Complete(ctx, action.TypeAuthorize, actionID, raw)
}

// Cancel reverses matching Completed point authorizations and frees the
// registration when the transaction still holds it.
func (s *PointAwardService) Cancel(ctx context.Context, params ports.CancelPointAwardParams) error {
	s.logger.InfoContext(ctx, "canceling point awards",
		slog.String("transaction_id", params.TransactionID),
		slog.String("action_id", params.ActionID),
	)

	if params.AgentID != "" {
		if err := checkOwner(ctx, s.transactions, params.AgentID, params.TransactionID); err != nil {
			return err
		}
	}

	targets, err := completedAuthorizations(ctx, s.actions, params.TransactionID, params.ActionID, action.ObjectPointAward)
	if err != nil {
		s.logError(ctx, "failed to search authorizations", params.TransactionID, err)
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

func (s *PointAwardService) cancelOne(ctx context.Context, act *action.Action) error {
	result, err := action.DecodeResult[action.PointAwardResult](act)
	if err != nil {
		return err
	}
	holder := purposeID(act)

	if _, err := s.actions.Cancel(ctx, action.TypeAuthorize, act.ID); err != nil {
		s.logError(ctx, "failed to cancel authorize action", holder, err, slog.String("action_id", act.ID))
		return err
	}

	if err := s.accounts.CancelTransaction(ctx, result.TransactionID); err != nil && !domain.IsBenignExternal(err) {
		s.logError(ctx, "failed to cancel deposit", holder, err,
			slog.String("action_id", act.ID),
			slog.String("point_transaction_id", result.TransactionID),
		)
		return err
	}

	if result.LockKey == "" {
		return nil
	}
	current, err := s.locks.GetHolder(ctx, result.LockKey)
	if err != nil {
		s.logError(ctx, "failed to read registration holder", holder, err, slog.String("key", result.LockKey))
		return err
	}
	if current != holder {
		return nil
	}
	return s.locks.Unlock(ctx, result.LockKey)
}

func (s *PointAwardService) logError(ctx context.Context, msg, transactionID string, err error, attrs ...any) {
	args := append([]any{
		slog.String("operation", "PointAwardService"),
		slog.String("transaction_id", transactionID),
	}, attrs...)
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, msg, args...)
}
