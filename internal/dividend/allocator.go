package dividend

import (
	"github.com/shopspring/decimal"

	"github.com/shareledger/dividend-backend/internal/apperrors"
)

// Allocate splits the dividend pool across accounts in proportion to their
// share-days. The per-share-day rate is computed as an unrounded decimal
// division, and rounding happens exactly once per account: half-up to the
// currency's minor-unit scale. Accounts with zero share-days are omitted from
// the result entirely.
//
// The sum of the returned amounts may drift from the pool by at most one
// minor currency unit per allocated account. The remainder is deliberately
// not redistributed into any account.
func Allocate(poolAmount decimal.Decimal, shareDaysByAccount map[string]int64, currencyDigits int32) (map[string]decimal.Decimal, error) {
	var totalShareDays int64
	for _, shareDays := range shareDaysByAccount {
		if shareDays > 0 {
			totalShareDays += shareDays
		}
	}
	if totalShareDays == 0 {
		return nil, apperrors.ErrNoEligibleShares
	}

	amountPerShareDay := poolAmount.Div(decimal.NewFromInt(totalShareDays))

	amounts := make(map[string]decimal.Decimal, len(shareDaysByAccount))
	for accountID, shareDays := range shareDaysByAccount {
		if shareDays <= 0 {
			continue
		}
		amounts[accountID] = amountPerShareDay.
			Mul(decimal.NewFromInt(shareDays)).
			Round(currencyDigits)
	}
	return amounts, nil
}
