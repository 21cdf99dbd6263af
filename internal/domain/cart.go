package domain

// LineItem is one cart entry: a denormalized snapshot of a product taken at
// add-time. Later catalog price changes do not affect items already in the
// cart. The JSON field names match the persisted cart format.
type LineItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line.
func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// Cart is an ordered sequence of line items. Insertion order is preserved
// for display; it carries no other meaning. Invariants: quantity >= 1 on
// every line, at most one line per product id.
type Cart []LineItem

// Total sums unit price times quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, li := range c {
		total += li.Subtotal()
	}
	return total
}

// IsEmpty reports whether the cart has no line items.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// ItemCount returns the total quantity across all lines.
func (c Cart) ItemCount() int {
	var count int
	for _, li := range c {
		count += li.Quantity
	}
	return count
}

// FindIndex returns the index of the line holding the given product id,
// or -1 if the product is not in the cart.
func (c Cart) FindIndex(productID int64) int {
	for i := range c {
		if c[i].ProductID == productID {
			return i
		}
	}
	return -1
}
