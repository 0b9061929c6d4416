package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shareledger/dividend-backend/internal/api/request"
)

// ValidateComputeDividend validates a dividend computation request.
// Checks field presence and formats only; semantic rules (period ordering,
// pool positivity, product existence) are enforced by the engine so that the
// same rules hold for every caller.
//
// Required fields:
//   - productId: Must be a valid UUID
//   - poolAmount: Must be a decimal number
//   - periodStart: Must be in YYYY-MM-DD format
//   - periodEnd: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateComputeDividend(req request.ComputeDividendRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.ProductID); err != nil {
		errors["productId"] = err.Error()
	}

	if strings.TrimSpace(req.PoolAmount) == "" {
		errors["poolAmount"] = "pool amount is required"
	} else if _, err := decimal.NewFromString(req.PoolAmount); err != nil {
		errors["poolAmount"] = "pool amount not a valid number"
	}

	if strings.TrimSpace(req.PeriodStart) == "" {
		errors["periodStart"] = "period start is required"
	} else if _, err := time.Parse("2006-01-02", req.PeriodStart); err != nil {
		errors["periodStart"] = err.Error()
	}

	if strings.TrimSpace(req.PeriodEnd) == "" {
		errors["periodEnd"] = "period end is required"
	} else if _, err := time.Parse("2006-01-02", req.PeriodEnd); err != nil {
		errors["periodEnd"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
