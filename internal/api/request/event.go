package request

// CreateShareEventRequest represents the request body for recording a share
// event. The event is created in APPLIED status; type is one of PURCHASE,
// REDEEM or CHARGE_PAYMENT.
type CreateShareEventRequest struct {
	AccountID string `json:"accountId"`
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	EventDate string `json:"eventDate"`
}
