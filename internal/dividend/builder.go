package dividend

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
)

// BuildPayout assembles the immutable payout record from a computed
// allocation. Allocations are ordered by account ID so that repeated
// computations over the same ledger snapshot produce identical share-day and
// amount sequences. Rejects an empty allocation set; the allocator never
// produces one, but the builder must not construct an empty payout.
func BuildPayout(req model.DividendRequest, shareDaysByAccount map[string]int64, amounts map[string]decimal.Decimal) (*model.DividendPayout, error) {
	if len(amounts) == 0 {
		return nil, apperrors.ErrEmptyAllocation
	}

	accountIDs := make([]string, 0, len(amounts))
	for accountID := range amounts {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	payout := &model.DividendPayout{
		ID:          uuid.New().String(),
		ProductID:   req.ProductID,
		PoolAmount:  req.PoolAmount,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Status:      model.PayoutStatusPendingApproval,
		CreatedAt:   time.Now().UTC(),
		Allocations: make([]model.AccountAllocation, 0, len(accountIDs)),
	}
	for _, accountID := range accountIDs {
		payout.Allocations = append(payout.Allocations, model.AccountAllocation{
			ID:        uuid.New().String(),
			PayoutID:  payout.ID,
			AccountID: accountID,
			ShareDays: shareDaysByAccount[accountID],
			Amount:    amounts[accountID],
		})
	}
	return payout, nil
}
