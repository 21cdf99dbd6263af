package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
)

// LoginRequest is the body of a login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued credential and account details.
type LoginResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// RegisterRequest is the body of a registration call.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// MessageResponse is a bare acknowledgement from the backend.
type MessageResponse struct {
	Message string `json:"message"`
}

// stockUpdateResponse wraps the product returned by a stock patch.
type stockUpdateResponse struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder submits an order built from the cart.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error) {
	var out domain.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/orders/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStock sets the stock level of a product (admin only).
func (c *Client) UpdateStock(ctx context.Context, productID int64, stock int) (*domain.Product, error) {
	var out stockUpdateResponse
	endpoint := fmt.Sprintf("/products/%d/stock", productID)
	if err := c.do(ctx, http.MethodPatch, endpoint, map[string]int{"stock": stock}, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// UpdateOrderStatus moves an order to a new status (admin only).
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	endpoint := fmt.Sprintf("/orders/%d/status", orderID)
	return c.do(ctx, http.MethodPatch, endpoint, map[string]string{"status": status}, nil)
}

// Orders fetches all orders (admin only).
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyOrders fetches the authenticated user's order history.
func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Users lists all registered accounts (admin only).
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/users/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
