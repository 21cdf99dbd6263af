package domain

// Availability values reported by the catalog.
const (
	AvailabilityInStock    = "In Stock"
	AvailabilityLimited    = "Limited Stock"
	AvailabilityOutOfStock = "Out of Stock"
)

// Product is a catalog entry as served by the products endpoint. The cart
// never holds a Product directly; it snapshots the fields it needs at
// add-time.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Description  string  `json:"description,omitempty"`
	Specs        string  `json:"specs,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	Stock        int     `json:"stock,omitempty"`
	Availability string  `json:"availability,omitempty"`
	Warranty     string  `json:"warranty,omitempty"`
}
