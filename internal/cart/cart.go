// Package cart owns the persisted shopping cart. All operations are
// synchronous read-modify-write cycles against the backing store, with no
// suspension point between read and persist, so two user actions can never
// interleave into a lost update.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
	"github.com/jay10z/it-equipment-ordering-system/internal/store"
)

// Store provides cart operations over a key-value store.
type Store struct {
	kv     store.Store
	logger *slog.Logger
}

// NewStore creates a cart store backed by kv.
func NewStore(kv store.Store, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Get reads the cart from the store. A missing or malformed value reads as
// an empty cart; corruption is logged, never surfaced to the caller.
func (s *Store) Get(ctx context.Context) domain.Cart {
	data, err := s.kv.Get(ctx, store.KeyCart)
	if err != nil {
		return domain.Cart{}
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.WarnContext(ctx, "discarding malformed cart data",
			slog.String("error", err.Error()),
		)
		return domain.Cart{}
	}
	return cart
}

// Add puts one unit of the product in the cart. If a line for the product
// already exists its quantity is incremented; otherwise a new line is
// appended with a snapshot of the product's name and price.
func (s *Store) Add(ctx context.Context, p domain.Product) (domain.Cart, error) {
	cart := s.Get(ctx)

	if i := cart.FindIndex(p.ID); i >= 0 {
		cart[i].Quantity++
	} else {
		cart = append(cart, domain.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  1,
		})
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.Int64("product_id", p.ID),
		slog.String("name", p.Name),
	)

	return cart, nil
}

// UpdateQuantity applies delta to the quantity of the line at index. If the
// resulting quantity drops to zero or below, the line is removed. An
// out-of-range index is a silent no-op.
func (s *Store) UpdateQuantity(ctx context.Context, index, delta int) (domain.Cart, error) {
	cart := s.Get(ctx)

	if index < 0 || index >= len(cart) {
		return cart, nil
	}

	cart[index].Quantity += delta
	if cart[index].Quantity <= 0 {
		cart = append(cart[:index], cart[index+1:]...)
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove deletes the line at index. An out-of-range index is a silent no-op.
func (s *Store) Remove(ctx context.Context, index int) (domain.Cart, error) {
	cart := s.Get(ctx)

	if index < 0 || index >= len(cart) {
		return cart, nil
	}

	cart = append(cart[:index], cart[index+1:]...)

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear replaces the persisted cart with an empty one. The key stays
// present; only its contents are emptied.
func (s *Store) Clear(ctx context.Context) error {
	return s.persist(ctx, domain.Cart{})
}

// Total returns the sum of unit price times quantity over the current cart.
func (s *Store) Total(ctx context.Context) float64 {
	return s.Get(ctx).Total()
}

func (s *Store) persist(ctx context.Context, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyCart, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
