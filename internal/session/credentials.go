// Package session owns the authenticated session: the bearer credential and
// account snapshot persisted locally, and the login/register/logout flows
// around them.
package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
	"github.com/jay10z/it-equipment-ordering-system/internal/store"
)

// Credentials reads and writes the persisted credential state. It implements
// the api package's TokenSource.
type Credentials struct {
	kv     store.Store
	logger *slog.Logger
}

// NewCredentials creates a credential store over kv.
func NewCredentials(kv store.Store, logger *slog.Logger) *Credentials {
	return &Credentials{
		kv:     kv,
		logger: logger,
	}
}

// Token returns the stored bearer credential, if one is present.
func (c *Credentials) Token(ctx context.Context) (string, bool) {
	data, err := c.kv.Get(ctx, store.KeyAccessToken)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// User returns the stored account snapshot. A missing or malformed value
// reads as anonymous.
func (c *Credentials) User(ctx context.Context) (domain.User, bool) {
	data, err := c.kv.Get(ctx, store.KeyUser)
	if err != nil {
		return domain.User{}, false
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		c.logger.WarnContext(ctx, "discarding malformed user data",
			slog.String("error", err.Error()),
		)
		return domain.User{}, false
	}
	return u, true
}

// IsAdmin reports whether the stored account has admin rights.
func (c *Credentials) IsAdmin(ctx context.Context) bool {
	u, ok := c.User(ctx)
	return ok && u.IsAdmin
}

// Save persists the credential and account snapshot.
func (c *Credentials) Save(ctx context.Context, token string, user domain.User) error {
	if err := c.kv.Set(ctx, store.KeyAccessToken, []byte(token)); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, store.KeyUser, data)
}

// Clear removes the credential and account snapshot.
func (c *Credentials) Clear(ctx context.Context) error {
	if err := c.kv.Delete(ctx, store.KeyAccessToken); err != nil {
		return err
	}
	return c.kv.Delete(ctx, store.KeyUser)
}
