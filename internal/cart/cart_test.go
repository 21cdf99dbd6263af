package cart

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
	"github.com/jay10z/it-equipment-ordering-system/internal/store"
)

func newTestStore(t *testing.T) (*Store, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(kv, logger), kv
}

func laptop() domain.Product {
	return domain.Product{
		ID:           1,
		Name:         "Dell Latitude 5420",
		Category:     "Computers",
		Price:        450000,
		Availability: domain.AvailabilityInStock,
	}
}

func router() domain.Product {
	return domain.Product{
		ID:           4,
		Name:         "Cisco Small Business Router",
		Category:     "Networking",
		Price:        95000,
		Availability: domain.AvailabilityInStock,
	}
}

func TestGet_EmptyWhenNeverSet(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.Get(context.Background()))
}

func TestGet_MalformedDataReadsAsEmpty(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, store.KeyCart, []byte(`{not json!`)))

	assert.Empty(t, s.Get(ctx))
}

func TestAdd_NewLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	cart, err := s.Add(ctx, laptop())
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, domain.LineItem{
		ProductID: 1,
		Name:      "Dell Latitude 5420",
		UnitPrice: 450000,
		Quantity:  1,
	}, cart[0])
}

func TestAdd_MergesByProductID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)
	_, err = s.Add(ctx, router())
	require.NoError(t, err)
	cart, err := s.Add(ctx, laptop())
	require.NoError(t, err)

	require.Len(t, cart, 2)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestAdd_RepeatedAddsCountQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// For any sequence of adds: one line per distinct id, quantity equal
	// to the add count for that id.
	sequence := []domain.Product{laptop(), router(), laptop(), laptop(), router()}
	for _, p := range sequence {
		_, err := s.Add(ctx, p)
		require.NoError(t, err)
	}

	cart := s.Get(ctx)
	require.Len(t, cart, 2)
	assert.Equal(t, 3, cart[cart.FindIndex(1)].Quantity)
	assert.Equal(t, 2, cart[cart.FindIndex(4)].Quantity)
}

func TestAdd_SnapshotsPriceAtAddTime(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	p := laptop()
	_, err := s.Add(ctx, p)
	require.NoError(t, err)

	// A later catalog price change must not affect the cart.
	p.Price = 999999
	cart := s.Get(ctx)
	assert.Equal(t, float64(450000), cart[0].UnitPrice)
}

func TestAdd_Persists(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)

	data, err := kv.Get(ctx, store.KeyCart)
	require.NoError(t, err)

	var persisted domain.Cart
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, s.Get(ctx), persisted)
}

func TestUpdateQuantity_Increment(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)

	cart, err := s.UpdateQuantity(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestUpdateQuantity_DecrementToZeroRemovesLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)
	_, err = s.Add(ctx, laptop())
	require.NoError(t, err)

	cart, err := s.UpdateQuantity(ctx, 0, -2)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestUpdateQuantity_BelowZeroRemovesLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)

	cart, err := s.UpdateQuantity(ctx, 0, -5)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestUpdateQuantity_OutOfRangeIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)
	before := s.Get(ctx)

	for _, idx := range []int{-1, 1, 42} {
		cart, err := s.UpdateQuantity(ctx, idx, 1)
		require.NoError(t, err)
		assert.Equal(t, before, cart, "index %d", idx)
	}
	assert.Equal(t, before, s.Get(ctx))
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)
	_, err = s.Add(ctx, router())
	require.NoError(t, err)

	cart, err := s.Remove(ctx, 0)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(4), cart[0].ProductID)
}

func TestRemove_OutOfRangeIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)

	cart, err := s.Remove(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestClear_LeavesEmptyCartPersisted(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, s.Get(ctx))

	// Cleared, not deleted: the key still holds an empty sequence.
	data, err := kv.Get(ctx, store.KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestTotal(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, laptop())
	require.NoError(t, err)
	_, err = s.Add(ctx, laptop())
	require.NoError(t, err)
	_, err = s.Add(ctx, router())
	require.NoError(t, err)

	assert.Equal(t, float64(450000*2+95000), s.Total(ctx))
}

func TestRoundTrip_PersistedCartEqualsOriginal(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	original := domain.Cart{
		{ProductID: 1, Name: "Dell Latitude 5420", UnitPrice: 450000, Quantity: 2},
		{ProductID: 9, Name: "HDMI Cable 2m", UnitPrice: 3500, Quantity: 1},
	}
	data, err := json.Marshal(original)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, store.KeyCart, data))

	assert.Equal(t, original, s.Get(ctx))
}
