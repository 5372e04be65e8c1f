package models

// Coupon describes a discount code. PercentOff and DueDate are display
// metadata only: the server alone decides eligibility and recomputes the
// final total, so the client never checks expiry or does discount math.
type Coupon struct {
	Code       string  `json:"code"`
	PercentOff float64 `json:"percent_off"`
	// DueDate is the expiry moment in epoch seconds.
	DueDate   int64 `json:"due_date"`
	IsEnabled bool  `json:"is_enabled"`
}
