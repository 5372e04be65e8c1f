package models

// CartLine is one entry in the remote cart. Id identifies the cart entry
// itself and is distinct from ProductId.
type CartLine struct {
	Id            string  `json:"id"`
	ProductId     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"qty"`
	UnitPrice     float64 `json:"unit_price"`
	LineTotal     float64 `json:"line_total"`
	AppliedCoupon *Coupon `json:"applied_coupon,omitempty"`
}

// CartSnapshot is the last-known server cart state. It is replaced wholesale
// on every fetch; the client never edits lines or recomputes totals locally.
// FinalTotal is the post-coupon price and never exceeds Subtotal.
type CartSnapshot struct {
	Lines      []CartLine
	Subtotal   float64
	FinalTotal float64
	// Revision is the logical time of the last successful fetch.
	Revision int64
}

// LineCount returns the number of cart lines. This is the canonical badge
// number for every surface; it deliberately does not sum quantities.
func (s CartSnapshot) LineCount() int {
	return len(s.Lines)
}
