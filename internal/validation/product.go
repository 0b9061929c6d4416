package validation

import (
	"strings"

	"github.com/shareledger/dividend-backend/internal/api/request"
)

// ValidateCreateProduct validates a share product creation request.
func ValidateCreateProduct(req request.CreateProductRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(strings.TrimSpace(req.Currency)) != 3 {
		errors["currency"] = "currency must be a 3-letter ISO code"
	}

	if req.CurrencyDigits < 0 || req.CurrencyDigits > 6 {
		errors["currencyDigits"] = "currency digits must be between 0 and 6"
	}

	if req.MinimumActivePeriodDays < 0 {
		errors["minimumActivePeriodDays"] = "minimum active period cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
