package models

// Order is a placed order as reported by the commerce API.
type Order struct {
	Id        string     `json:"orderId"`
	Total     float64    `json:"total"`
	CreatedAt int64      `json:"create_at"`
	IsPaid    bool       `json:"is_paid"`
	Lines     []CartLine `json:"lines,omitempty"`
}

// ContactForm holds the shipping/contact fields collected during checkout.
// Message is the only optional field.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Message string `json:"message,omitempty"`
}
