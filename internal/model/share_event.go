package model

import "time"

// Share event types as recorded in the ledger.
const (
	EventTypePurchase      = "PURCHASE"
	EventTypeRedeem        = "REDEEM"
	EventTypeChargePayment = "CHARGE_PAYMENT"
)

// Share event statuses. Only APPROVED events participate in dividend
// computation.
const (
	EventStatusApplied  = "APPLIED"
	EventStatusApproved = "APPROVED"
	EventStatusRejected = "REJECTED"
)

// ShareEvent represents one historical ledger entry for a shareholder account.
// Charge payments never affect share quantity and are excluded from share-day
// accumulation entirely.
type ShareEvent struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Quantity  int64     `json:"quantity"`
	EventDate time.Time `json:"eventDate"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
