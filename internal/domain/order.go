package domain

// Order statuses used by the orders endpoint.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// OrderItem is one entry in an order creation request.
type OrderItem struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// OrderRequest is the body of an order creation request. It is derived from
// the cart at checkout time and never persisted.
type OrderRequest struct {
	Items []OrderItem `json:"items"`
}

// NewOrderRequest builds an order request from the cart, preserving line order.
func NewOrderRequest(c Cart) OrderRequest {
	items := make([]OrderItem, len(c))
	for i, li := range c {
		items[i] = OrderItem{ID: li.ProductID, Quantity: li.Quantity}
	}
	return OrderRequest{Items: items}
}

// OrderConfirmation is the server's response to a successful order creation.
// OrderID is the only field the coordinator requires; a confirmation without
// it is treated as a protocol error.
type OrderConfirmation struct {
	OrderID    int64   `json:"order_id"`
	Total      float64 `json:"total"`
	ItemsCount int     `json:"items_count"`
	Message    string  `json:"message,omitempty"`
}

// OrderLine is a historical order line as returned by the orders endpoints.
type OrderLine struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a previously placed order.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"created_at"`
	Items       []OrderLine `json:"items"`
}
