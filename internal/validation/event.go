package validation

import (
	"strings"
	"time"

	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/model"
)

var validEventTypes = map[string]bool{
	model.EventTypePurchase:      true,
	model.EventTypeRedeem:        true,
	model.EventTypeChargePayment: true,
}

// ValidateCreateShareEvent validates a share event recording request.
// Purchases and redemptions must move a positive quantity of shares; charge
// payments carry no share quantity.
func ValidateCreateShareEvent(req request.CreateShareEventRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.AccountID); err != nil {
		errors["accountId"] = err.Error()
	}

	if err := ValidateUUID(req.ProductID); err != nil {
		errors["productId"] = err.Error()
	}

	if !validEventTypes[req.Type] {
		errors["type"] = "type must be PURCHASE, REDEEM or CHARGE_PAYMENT"
	}

	switch {
	case req.Quantity < 0:
		errors["quantity"] = "quantity cannot be negative"
	case req.Quantity == 0 && req.Type != model.EventTypeChargePayment:
		errors["quantity"] = "quantity must be positive"
	}

	if strings.TrimSpace(req.EventDate) == "" {
		errors["eventDate"] = "event date is required"
	} else if _, err := time.Parse("2006-01-02", req.EventDate); err != nil {
		errors["eventDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
