package model

import "time"

// ShareProduct holds the dividend configuration for a share product.
// CurrencyDigits is the minor-unit scale of the product currency and
// MinimumActivePeriodDays is the minimum number of days a purchased lot must
// be held, measured to the period end, to earn dividend share-days.
type ShareProduct struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	Currency                string    `json:"currency"`
	CurrencyDigits          int32     `json:"currencyDigits"`
	MinimumActivePeriodDays int       `json:"minimumActivePeriodDays"`
	CreatedAt               time.Time `json:"createdAt,omitempty"`
}
