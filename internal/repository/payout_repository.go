package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
)

type PayoutRepository struct {
	db *sql.DB
}

func NewPayoutRepository(db *sql.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// SavePayout stores a payout and its allocations in one transaction.
// The unique (product_id, period_start, period_end) constraint turns a repeat
// computation for the same product and period into ErrDuplicatePayout.
func (r *PayoutRepository) SavePayout(ctx context.Context, payout *model.DividendPayout) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op
	defer tx.Rollback()

	payoutQuery := `
		INSERT INTO dividend_payout (id, product_id, pool_amount, period_start, period_end, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, payoutQuery,
		payout.ID,
		payout.ProductID,
		payout.PoolAmount,
		FormatDate(payout.PeriodStart),
		FormatDate(payout.PeriodEnd),
		payout.Status,
		payout.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicatePayout
		}
		return fmt.Errorf("failed to insert dividend payout: %w", err)
	}

	allocationQuery := `
		INSERT INTO dividend_allocation (id, payout_id, account_id, share_days, amount)
		VALUES (?, ?, ?, ?, ?)
	`

	for _, allocation := range payout.Allocations {
		_, err = tx.ExecContext(ctx, allocationQuery,
			allocation.ID,
			allocation.PayoutID,
			allocation.AccountID,
			allocation.ShareDays,
			allocation.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert dividend allocation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dividend payout: %w", err)
	}
	return nil
}

// GetPayout returns a payout with its allocations ordered by account ID.
// The payout row and the allocation rows are independent reads and are
// fetched concurrently. Returns apperrors.ErrPayoutNotFound if no such
// payout exists.
func (r *PayoutRepository) GetPayout(ctx context.Context, payoutID string) (model.DividendPayout, error) {
	var (
		payout      model.DividendPayout
		allocations []model.AccountAllocation
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payout, err = r.getPayoutRow(ctx, payoutID)
		return err
	})
	g.Go(func() error {
		var err error
		allocations, err = r.getAllocations(ctx, payoutID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DividendPayout{}, err
	}

	payout.Allocations = allocations
	return payout, nil
}

// GetPayoutsPerProduct returns all payouts of a product, newest first,
// without their allocations.
func (r *PayoutRepository) GetPayoutsPerProduct(productID string) ([]model.DividendPayout, error) {
	query := `
		SELECT id, product_id, pool_amount, period_start, period_end, status, created_at
		FROM dividend_payout
		WHERE product_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend_payout table: %w", err)
	}
	defer rows.Close()

	payouts := []model.DividendPayout{}
	for rows.Next() {
		payout, err := scanPayout(rows.Scan)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, payout)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend_payout table: %w", err)
	}

	return payouts, nil
}

// UpdatePayoutStatus moves a payout to the given status.
func (r *PayoutRepository) UpdatePayoutStatus(ctx context.Context, payoutID, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE dividend_payout SET status = ? WHERE id = ?`, status, payoutID)
	if err != nil {
		return fmt.Errorf("failed to update dividend payout status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update dividend payout status: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPayoutNotFound
	}
	return nil
}

// DeletePayout removes a payout; its allocations go with it via the foreign
// key cascade.
func (r *PayoutRepository) DeletePayout(ctx context.Context, payoutID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dividend_payout WHERE id = ?`, payoutID)
	if err != nil {
		return fmt.Errorf("failed to delete dividend payout: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete dividend payout: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPayoutNotFound
	}
	return nil
}

func (r *PayoutRepository) getPayoutRow(ctx context.Context, payoutID string) (model.DividendPayout, error) {
	query := `
		SELECT id, product_id, pool_amount, period_start, period_end, status, created_at
		FROM dividend_payout
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, payoutID)
	payout, err := scanPayout(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DividendPayout{}, apperrors.ErrPayoutNotFound
	}
	return payout, err
}

func (r *PayoutRepository) getAllocations(ctx context.Context, payoutID string) ([]model.AccountAllocation, error) {
	query := `
		SELECT id, payout_id, account_id, share_days, amount
		FROM dividend_allocation
		WHERE payout_id = ?
		ORDER BY account_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, payoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend_allocation table: %w", err)
	}
	defer rows.Close()

	allocations := []model.AccountAllocation{}
	for rows.Next() {
		var allocation model.AccountAllocation
		err := rows.Scan(
			&allocation.ID,
			&allocation.PayoutID,
			&allocation.AccountID,
			&allocation.ShareDays,
			&allocation.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dividend_allocation row: %w", err)
		}
		allocations = append(allocations, allocation)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend_allocation table: %w", err)
	}

	return allocations, nil
}

func scanPayout(scan func(dest ...any) error) (model.DividendPayout, error) {
	var payout model.DividendPayout
	var periodStartStr, periodEndStr, createdAtStr string

	err := scan(
		&payout.ID,
		&payout.ProductID,
		&payout.PoolAmount,
		&periodStartStr,
		&periodEndStr,
		&payout.Status,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DividendPayout{}, err
		}
		return model.DividendPayout{}, fmt.Errorf("failed to scan dividend_payout row: %w", err)
	}

	payout.PeriodStart, err = ParseTime(periodStartStr)
	if err != nil {
		return model.DividendPayout{}, err
	}
	payout.PeriodEnd, err = ParseTime(periodEndStr)
	if err != nil {
		return model.DividendPayout{}, err
	}
	payout.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.DividendPayout{}, err
	}
	return payout, nil
}
