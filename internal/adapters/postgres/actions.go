package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.ActionRepository = (*ActionRepository)(nil)

const actionColumns = `id, type_of, status, start_date, end_date, agent, recipient,
	object, result, error, purpose_type, purpose_id, purpose_order_number`

// ActionRepository is the PostgreSQL action ledger.
type ActionRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewActionRepository creates a ledger on the store's pool. A nil clock uses
// time.Now.
func NewActionRepository(s *Store, now func() time.Time) *ActionRepository {
	return &ActionRepository{db: s.db, now: nowFunc(now)}
}

// Start inserts a new Active action.
func (r *ActionRepository) Start(ctx context.Context, attrs action.Attributes) (*action.Action, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	a := &action.Action{
		ID:        uuid.NewString(),
		TypeOf:    attrs.TypeOf,
		Status:    action.StatusActive,
		StartDate: r.now().UTC(),
		Agent:     attrs.Agent,
		Recipient: attrs.Recipient,
		Object:    attrs.Object,
		Purpose:   attrs.Purpose,
	}

	agent, err := json.Marshal(a.Agent)
	if err != nil {
		return nil, fmt.Errorf("encoding agent: %w", err)
	}
	recipient, err := marshalOptional(a.Recipient)
	if err != nil {
		return nil, fmt.Errorf("encoding recipient: %w", err)
	}

	var purposeType, purposeID, purposeOrder sql.NullString
	if p := a.Purpose; p != nil {
		purposeType = sql.NullString{String: p.TypeOf, Valid: true}
		purposeID = sql.NullString{String: p.ID, Valid: p.ID != ""}
		purposeOrder = sql.NullString{String: p.OrderNumber, Valid: p.OrderNumber != ""}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO actions (id, type_of, status, start_date, agent, recipient, object,
			purpose_type, purpose_id, purpose_order_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.TypeOf, a.Status, a.StartDate, string(agent), recipient, jsonArg(a.Object),
		purposeType, purposeID, purposeOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting %s: %w", a.TypeOf, err)
	}

	return a, nil
}

// Complete moves an Active action to Completed.
func (r *ActionRepository) Complete(ctx context.Context, typeOf action.Type, id string, result json.RawMessage) (*action.Action, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE actions SET status = $1, end_date = $2, result = $3
		WHERE type_of = $4 AND id = $5 AND status = $6
		RETURNING `+actionColumns,
		action.StatusCompleted, r.now().UTC(), jsonArg(result), typeOf, id, action.StatusActive,
	)
	return r.scanTransition(row, typeOf, id)
}

// Cancel moves an Active or Completed action to Canceled. An existing end date
// is kept.
func (r *ActionRepository) Cancel(ctx context.Context, typeOf action.Type, id string) (*action.Action, error) {
	from := []string{string(action.StatusActive), string(action.StatusCompleted)}
	row := r.db.QueryRowContext(ctx, `
		UPDATE actions SET status = $1, end_date = COALESCE(end_date, $2)
		WHERE type_of = $3 AND id = $4 AND status = ANY($5)
		RETURNING `+actionColumns,
		action.StatusCanceled, r.now().UTC(), typeOf, id, pq.Array(from),
	)
	return r.scanTransition(row, typeOf, id)
}

// GiveUp moves an Active action to Failed.
func (r *ActionRepository) GiveUp(ctx context.Context, typeOf action.Type, id string, actionErr *action.Error) (*action.Action, error) {
	encoded, err := marshalOptional(actionErr)
	if err != nil {
		return nil, fmt.Errorf("encoding action error: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE actions SET status = $1, end_date = $2, error = $3
		WHERE type_of = $4 AND id = $5 AND status = $6
		RETURNING `+actionColumns,
		action.StatusFailed, r.now().UTC(), encoded, typeOf, id, action.StatusActive,
	)
	return r.scanTransition(row, typeOf, id)
}

func (r *ActionRepository) scanTransition(row *sql.Row, typeOf action.Type, id string) (*action.Action, error) {
	a, err := scanAction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", typeOf, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", typeOf, id, err)
	}
	return a, nil
}

// FindByID returns the action in any status.
func (r *ActionRepository) FindByID(ctx context.Context, typeOf action.Type, id string) (*action.Action, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+actionColumns+` FROM actions WHERE type_of = $1 AND id = $2`,
		typeOf, id,
	)
	a, err := scanAction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", typeOf, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("finding %s %s: %w", typeOf, id, err)
	}
	return a, nil
}

// SearchByPurpose returns every action matching conds.
func (r *ActionRepository) SearchByPurpose(ctx context.Context, conds action.PurposeConditions) ([]action.Action, error) {
	if err := conds.Validate(); err != nil {
		return nil, err
	}

	where := []string{"purpose_type = $1"}
	args := []any{conds.Purpose.TypeOf}

	if conds.Purpose.ID != "" {
		args = append(args, conds.Purpose.ID)
		where = append(where, fmt.Sprintf("purpose_id = $%d", len(args)))
	}
	if conds.TypeOf != "" {
		args = append(args, conds.TypeOf)
		where = append(where, fmt.Sprintf("type_of = $%d", len(args)))
	}

	query := `SELECT ` + actionColumns + ` FROM actions WHERE ` +
		strings.Join(where, " AND ") + orderBy(conds.Sort)
	return r.query(ctx, query, args...)
}

// SearchByOrderNumber returns actions whose object or purpose carries the
// order number.
func (r *ActionRepository) SearchByOrderNumber(ctx context.Context, orderNumber string, sort action.Sort) ([]action.Action, error) {
	if orderNumber == "" {
		return nil, domain.NewValidationError("orderNumber", domain.MsgRequired)
	}

	query := `SELECT ` + actionColumns + ` FROM actions
		WHERE object->>'orderNumber' = $1 OR purpose_order_number = $1` + orderBy(sort)
	return r.query(ctx, query, orderNumber)
}

func (r *ActionRepository) query(ctx context.Context, query string, args ...any) ([]action.Action, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching actions: %w", err)
	}
	defer rows.Close()

	out := make([]action.Action, 0)
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("searching actions: %w", err)
	}
	return out, nil
}

func orderBy(sort action.Sort) string {
	switch sort.StartDate {
	case action.SortAscending:
		return " ORDER BY start_date ASC, seq ASC"
	case action.SortDescending:
		return " ORDER BY start_date DESC, seq DESC"
	default:
		return " ORDER BY seq ASC"
	}
}

func scanAction(row scanner) (*action.Action, error) {
	var (
		a                                         action.Action
		endDate                                   sql.NullTime
		agent, recipient, object, result, failure []byte
		purposeType, purposeID, purposeOrder      sql.NullString
	)

	err := row.Scan(&a.ID, &a.TypeOf, &a.Status, &a.StartDate, &endDate, &agent, &recipient,
		&object, &result, &failure, &purposeType, &purposeID, &purposeOrder)
	if err != nil {
		return nil, err
	}

	a.StartDate = a.StartDate.UTC()
	a.EndDate = timePtr(endDate)
	a.Object = rawOrNil(object)
	a.Result = rawOrNil(result)

	if err := json.Unmarshal(agent, &a.Agent); err != nil {
		return nil, fmt.Errorf("decoding agent of %s: %w", a.ID, err)
	}
	if len(recipient) > 0 {
		a.Recipient = new(action.Participant)
		if err := json.Unmarshal(recipient, a.Recipient); err != nil {
			return nil, fmt.Errorf("decoding recipient of %s: %w", a.ID, err)
		}
	}
	if len(failure) > 0 {
		a.Error = new(action.Error)
		if err := json.Unmarshal(failure, a.Error); err != nil {
			return nil, fmt.Errorf("decoding error of %s: %w", a.ID, err)
		}
	}
	if purposeType.Valid {
		a.Purpose = &action.Purpose{
			TypeOf:      purposeType.String,
			ID:          purposeID.String,
			OrderNumber: purposeOrder.String,
		}
	}

	return &a, nil
}

// jsonArg passes a JSON document as text so that lib/pq does not send it as
// bytea. Empty documents become NULL.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func marshalOptional[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func rawOrNil(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}
