package models

// Product is a catalog entry. The storefront treats it as read-only;
// the admin console may create, update, and delete products.
type Product struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Artist      string  `json:"artist"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
}
