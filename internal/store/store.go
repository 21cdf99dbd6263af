// Package store provides the durable key-value persistence behind the cart
// and session state. Values are opaque JSON blobs keyed by name.
package store

import "context"

// Well-known keys.
const (
	KeyCart        = "cart"
	KeyAccessToken = "access_token"
	KeyUser        = "user"
)

// Store is a durable key-value store for JSON-serializable state.
type Store interface {
	// Get returns the value for key, or an error wrapping
	// apperrors.ErrNotFound if the key has never been set.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set persists value under key, overwriting any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
