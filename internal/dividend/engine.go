package dividend

import (
	"context"

	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
)

// Engine runs the accumulate, allocate and build sequence for one dividend
// request against a consistent ledger snapshot. One invocation is fully
// synchronous and produces exactly one payout or an error; the caller
// persists the result inside its own unit of work.
type Engine struct {
	products ProductConfigPort
	ledger   TransactionLedgerPort
}

// NewEngine creates an Engine reading product configuration and ledger
// snapshots through the provided ports.
func NewEngine(products ProductConfigPort, ledger TransactionLedgerPort) *Engine {
	return &Engine{
		products: products,
		ledger:   ledger,
	}
}

// ComputeDividend computes the dividend payout for the request. Request
// validation happens before any ledger read; a missing product surfaces as
// ErrProductNotFound from the product port. Returns ErrNoEligibleShares when
// no account earned share-days in the period, in which case no payout exists.
func (e *Engine) ComputeDividend(ctx context.Context, req model.DividendRequest) (*model.DividendPayout, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := e.products.GetDividendConfig(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	eventsByAccount, err := e.ledger.GetApprovedShareEvents(ctx, req.ProductID, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	shareDaysByAccount := make(map[string]int64, len(eventsByAccount))
	for accountID, events := range eventsByAccount {
		shareDays := AccumulateShareDays(events, req.PeriodStart, req.PeriodEnd, product.MinimumActivePeriodDays)
		if shareDays > 0 {
			shareDaysByAccount[accountID] = shareDays
		}
	}

	amounts, err := Allocate(req.PoolAmount, shareDaysByAccount, product.CurrencyDigits)
	if err != nil {
		return nil, err
	}

	return BuildPayout(req, shareDaysByAccount, amounts)
}

func validateRequest(req model.DividendRequest) error {
	if req.PeriodEnd.Before(req.PeriodStart) {
		return apperrors.ErrInvalidDateRange
	}
	if !req.PoolAmount.IsPositive() {
		return apperrors.ErrInvalidPoolAmount
	}
	return nil
}
