package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dividend payout statuses. A payout is created PENDING_APPROVAL and can only
// move to APPROVED (one-way) or be deleted while still pending.
const (
	PayoutStatusPendingApproval = "PENDING_APPROVAL"
	PayoutStatusApproved        = "APPROVED"
)

// DividendRequest is the input to a dividend computation: distribute
// PoolAmount across all accounts of the product in proportion to how long
// each account held how many shares during [PeriodStart, PeriodEnd].
type DividendRequest struct {
	ProductID   string
	PoolAmount  decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// AccountAllocation is one account's slice of a dividend payout.
type AccountAllocation struct {
	ID        string          `json:"id"`
	PayoutID  string          `json:"payoutId"`
	AccountID string          `json:"accountId"`
	ShareDays int64           `json:"shareDays"`
	Amount    decimal.Decimal `json:"amount"`
}

// DividendPayout is the immutable result of one dividend computation.
// Allocations are ordered by account ID.
type DividendPayout struct {
	ID          string              `json:"id"`
	ProductID   string              `json:"productId"`
	PoolAmount  decimal.Decimal     `json:"poolAmount"`
	PeriodStart time.Time           `json:"periodStart"`
	PeriodEnd   time.Time           `json:"periodEnd"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt,omitempty"`
	Allocations []AccountAllocation `json:"allocations,omitempty"`
}
