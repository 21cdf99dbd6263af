// Package checkout converts the cart into a submitted order. The flow is
// best-effort, not exactly-once: a retry after a reported failure submits a
// fresh, independent request.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
	apperrors "github.com/jay10z/it-equipment-ordering-system/pkg/errors"
)

// CartAccess is the slice of the cart store the coordinator needs.
type CartAccess interface {
	Get(ctx context.Context) domain.Cart
	Clear(ctx context.Context) error
}

// OrderPlacer submits an order request to the backend.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error)
}

// TokenSource reports whether a bearer credential is present.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Coordinator orchestrates the checkout flow.
type Coordinator struct {
	carts  CartAccess
	orders OrderPlacer
	tokens TokenSource
	logger *slog.Logger
}

// NewCoordinator creates a checkout coordinator.
func NewCoordinator(carts CartAccess, orders OrderPlacer, tokens TokenSource, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		carts:  carts,
		orders: orders,
		tokens: tokens,
		logger: logger,
	}
}

// Checkout validates preconditions, submits the cart as an order, and clears
// the cart once the backend confirms. Preconditions are checked locally and
// reported before any network attempt. On any failure the cart is left
// untouched so nothing the user selected is lost.
func (c *Coordinator) Checkout(ctx context.Context) (*domain.OrderConfirmation, error) {
	if _, ok := c.tokens.Token(ctx); !ok {
		return nil, apperrors.NotAuthenticated("checkout requires a logged-in user")
	}

	cart := c.carts.Get(ctx)
	if cart.IsEmpty() {
		return nil, apperrors.EmptyCart()
	}

	req := domain.NewOrderRequest(cart)

	c.logger.InfoContext(ctx, "submitting order",
		slog.Int("lines", len(req.Items)),
		slog.Float64("cart_total", cart.Total()),
	)

	conf, err := c.orders.CreateOrder(ctx, req)
	if err != nil {
		c.logger.WarnContext(ctx, "order submission failed",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	// A confirmation without an order id is ambiguous server state; keep
	// the cart rather than risk dropping it for an order that may not exist.
	if conf.OrderID == 0 {
		return nil, apperrors.Protocol("order confirmation missing order_id", nil)
	}

	if err := c.carts.Clear(ctx); err != nil {
		// The order is placed; a failed local clear must not report the
		// checkout itself as failed.
		c.logger.ErrorContext(ctx, "order confirmed but cart clear failed",
			slog.Int64("order_id", conf.OrderID),
			slog.String("error", err.Error()),
		)
	}

	c.logger.InfoContext(ctx, "order confirmed",
		slog.Int64("order_id", conf.OrderID),
		slog.Float64("total", conf.Total),
	)

	return conf, nil
}
