package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shareledger/dividend-backend/internal/model"
	"github.com/shareledger/dividend-backend/internal/repository"
)

// ProductBuilder provides a fluent interface for creating test share products.
//
// Example usage:
//
//	// Simple creation with defaults
//	product := testutil.NewProduct().Build(t, db)
//
//	// Customized product
//	product := testutil.NewProduct().
//	    WithCurrency("USD", 2).
//	    WithMinimumActivePeriodDays(10).
//	    Build(t, db)
type ProductBuilder struct {
	ID                      string
	Name                    string
	Currency                string
	CurrencyDigits          int32
	MinimumActivePeriodDays int
}

// NewProduct creates a ProductBuilder with sensible defaults.
func NewProduct() *ProductBuilder {
	return &ProductBuilder{
		ID:                      MakeID(),
		Name:                    "Test Share Product",
		Currency:                "USD",
		CurrencyDigits:          2,
		MinimumActivePeriodDays: 0,
	}
}

// WithID sets a custom ID.
func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

// WithCurrency sets the currency code and its minor-unit scale.
func (b *ProductBuilder) WithCurrency(currency string, digits int32) *ProductBuilder {
	b.Currency = currency
	b.CurrencyDigits = digits
	return b
}

// WithMinimumActivePeriodDays sets the minimum holding period.
func (b *ProductBuilder) WithMinimumActivePeriodDays(days int) *ProductBuilder {
	b.MinimumActivePeriodDays = days
	return b
}

// Build creates the product in the database and returns it.
func (b *ProductBuilder) Build(t *testing.T, db *sql.DB) model.ShareProduct {
	t.Helper()

	query := `
		INSERT INTO share_product (id, name, currency, currency_digits, minimum_active_period_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query, b.ID, b.Name, b.Currency, b.CurrencyDigits, b.MinimumActivePeriodDays, createdAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test share product: %v", err)
	}

	return model.ShareProduct{
		ID:                      b.ID,
		Name:                    b.Name,
		Currency:                b.Currency,
		CurrencyDigits:          b.CurrencyDigits,
		MinimumActivePeriodDays: b.MinimumActivePeriodDays,
		CreatedAt:               createdAt,
	}
}

// ShareEventBuilder provides a fluent interface for creating test share events.
//
// Example usage:
//
//	testutil.NewShareEvent(product.ID, accountID).
//	    Purchase(100).
//	    On("2024-01-01").
//	    Approved().
//	    Build(t, db)
type ShareEventBuilder struct {
	ID        string
	AccountID string
	ProductID string
	Type      string
	Status    string
	Quantity  int64
	EventDate string
}

// NewShareEvent creates a ShareEventBuilder with sensible defaults: an
// APPLIED purchase of 100 shares dated today.
func NewShareEvent(productID, accountID string) *ShareEventBuilder {
	return &ShareEventBuilder{
		ID:        MakeID(),
		AccountID: accountID,
		ProductID: productID,
		Type:      model.EventTypePurchase,
		Status:    model.EventStatusApplied,
		Quantity:  100,
		EventDate: time.Now().UTC().Format("2006-01-02"),
	}
}

// Purchase marks the event as a purchase of the given quantity.
func (b *ShareEventBuilder) Purchase(quantity int64) *ShareEventBuilder {
	b.Type = model.EventTypePurchase
	b.Quantity = quantity
	return b
}

// Redeem marks the event as a redemption of the given quantity.
func (b *ShareEventBuilder) Redeem(quantity int64) *ShareEventBuilder {
	b.Type = model.EventTypeRedeem
	b.Quantity = quantity
	return b
}

// ChargePayment marks the event as a charge payment; charge payments carry no
// share quantity.
func (b *ShareEventBuilder) ChargePayment() *ShareEventBuilder {
	b.Type = model.EventTypeChargePayment
	b.Quantity = 0
	return b
}

// On sets the event date (YYYY-MM-DD).
func (b *ShareEventBuilder) On(date string) *ShareEventBuilder {
	b.EventDate = date
	return b
}

// Approved marks the event as APPROVED.
func (b *ShareEventBuilder) Approved() *ShareEventBuilder {
	b.Status = model.EventStatusApproved
	return b
}

// Rejected marks the event as REJECTED.
func (b *ShareEventBuilder) Rejected() *ShareEventBuilder {
	b.Status = model.EventStatusRejected
	return b
}

// Build creates the share event in the database and returns it.
func (b *ShareEventBuilder) Build(t *testing.T, db *sql.DB) model.ShareEvent {
	t.Helper()

	query := `
		INSERT INTO share_event (id, account_id, product_id, type, status, quantity, event_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query, b.ID, b.AccountID, b.ProductID, b.Type, b.Status, b.Quantity, b.EventDate, createdAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test share event: %v", err)
	}

	eventDate, err := repository.ParseTime(b.EventDate)
	if err != nil {
		t.Fatalf("Failed to parse test event date: %v", err)
	}

	return model.ShareEvent{
		ID:        b.ID,
		AccountID: b.AccountID,
		ProductID: b.ProductID,
		Type:      b.Type,
		Status:    b.Status,
		Quantity:  b.Quantity,
		EventDate: eventDate,
		CreatedAt: createdAt,
	}
}

// Convenience functions

// CreateApprovedPurchase creates an APPROVED purchase event.
//
// Example usage:
//
//	testutil.CreateApprovedPurchase(t, db, product.ID, accountID, 100, "2024-01-01")
func CreateApprovedPurchase(t *testing.T, db *sql.DB, productID, accountID string, quantity int64, date string) model.ShareEvent {
	t.Helper()
	return NewShareEvent(productID, accountID).Purchase(quantity).On(date).Approved().Build(t, db)
}

// CreateApprovedRedeem creates an APPROVED redemption event.
func CreateApprovedRedeem(t *testing.T, db *sql.DB, productID, accountID string, quantity int64, date string) model.ShareEvent {
	t.Helper()
	return NewShareEvent(productID, accountID).Redeem(quantity).On(date).Approved().Build(t, db)
}
