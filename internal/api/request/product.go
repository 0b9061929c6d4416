package request

// CreateProductRequest represents the request body for creating a share
// product with its dividend configuration.
type CreateProductRequest struct {
	Name                    string `json:"name"`
	Currency                string `json:"currency"`
	CurrencyDigits          int32  `json:"currencyDigits"`
	MinimumActivePeriodDays int    `json:"minimumActivePeriodDays"`
}
