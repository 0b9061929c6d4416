package request

// ComputeDividendRequest represents the request body for computing a dividend
// payout. PoolAmount is a decimal string to avoid float rounding on the wire;
// dates are YYYY-MM-DD.
type ComputeDividendRequest struct {
	ProductID   string `json:"productId"`
	PoolAmount  string `json:"poolAmount"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
}
