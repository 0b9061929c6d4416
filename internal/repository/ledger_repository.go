package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
)

type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// InsertEvent stores a new share event.
func (r *LedgerRepository) InsertEvent(ctx context.Context, event *model.ShareEvent) error {
	query := `
		INSERT INTO share_event (id, account_id, product_id, type, status, quantity, event_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.AccountID,
		event.ProductID,
		event.Type,
		event.Status,
		event.Quantity,
		FormatDate(event.EventDate),
		event.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert share event: %w", err)
	}
	return nil
}

// GetEvent returns a single share event by ID.
// Returns apperrors.ErrEventNotFound if no such event exists.
func (r *LedgerRepository) GetEvent(eventID string) (model.ShareEvent, error) {
	query := `
		SELECT id, account_id, product_id, type, status, quantity, event_date, created_at
		FROM share_event
		WHERE id = ?
	`

	row := r.db.QueryRow(query, eventID)
	event, err := scanEvent(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ShareEvent{}, apperrors.ErrEventNotFound
	}
	return event, err
}

// UpdateEventStatus moves a share event to the given status.
func (r *LedgerRepository) UpdateEventStatus(ctx context.Context, eventID, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE share_event SET status = ? WHERE id = ?`, status, eventID)
	if err != nil {
		return fmt.Errorf("failed to update share event status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update share event status: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// GetEventsPerAccount returns all share events of an account in event-date order.
func (r *LedgerRepository) GetEventsPerAccount(accountID string) ([]model.ShareEvent, error) {
	query := `
		SELECT id, account_id, product_id, type, status, quantity, event_date, created_at
		FROM share_event
		WHERE account_id = ?
		ORDER BY event_date ASC, created_at ASC
	`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query share_event table: %w", err)
	}
	defer rows.Close()

	events := []model.ShareEvent{}
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating share_event table: %w", err)
	}

	return events, nil
}

// GetApprovedShareEvents returns, grouped by account, the APPROVED purchase
// and redemption events of a product dated on or before asOf. The full
// earlier history is included so callers can reconstruct the share balance
// entering any period. Satisfies dividend.TransactionLedgerPort.
func (r *LedgerRepository) GetApprovedShareEvents(ctx context.Context, productID string, asOf time.Time) (map[string][]model.ShareEvent, error) {
	query := `
		SELECT id, account_id, product_id, type, status, quantity, event_date, created_at
		FROM share_event
		WHERE product_id = ?
		AND status = ?
		AND type != ?
		AND event_date <= ?
		ORDER BY account_id ASC, event_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query,
		productID,
		model.EventStatusApproved,
		model.EventTypeChargePayment,
		FormatDate(asOf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query share_event table: %w", err)
	}
	defer rows.Close()

	eventsByAccount := make(map[string][]model.ShareEvent)
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		eventsByAccount[event.AccountID] = append(eventsByAccount[event.AccountID], event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating share_event table: %w", err)
	}

	return eventsByAccount, nil
}

func scanEvent(scan func(dest ...any) error) (model.ShareEvent, error) {
	var event model.ShareEvent
	var eventDateStr, createdAtStr string

	err := scan(
		&event.ID,
		&event.AccountID,
		&event.ProductID,
		&event.Type,
		&event.Status,
		&event.Quantity,
		&eventDateStr,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ShareEvent{}, err
		}
		return model.ShareEvent{}, fmt.Errorf("failed to scan share_event row: %w", err)
	}

	event.EventDate, err = ParseTime(eventDateStr)
	if err != nil {
		return model.ShareEvent{}, err
	}
	event.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.ShareEvent{}, err
	}
	return event, nil
}
