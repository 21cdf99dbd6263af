package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jay10z/it-equipment-ordering-system/internal/api"
	"github.com/jay10z/it-equipment-ordering-system/internal/domain"
	apperrors "github.com/jay10z/it-equipment-ordering-system/pkg/errors"
	"github.com/jay10z/it-equipment-ordering-system/pkg/validator"
)

// Authenticator is the slice of the API client the session flows need.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.MessageResponse, error)
}

// LoginInput holds the login form fields.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterInput holds the registration form fields.
type RegisterInput struct {
	FullName string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,cm_phone"`
	Password string `validate:"required,min=8"`
}

// Manager runs the authentication flows. Form input is validated locally
// before any network call; invalid input never reaches the backend.
type Manager struct {
	creds  *Credentials
	auth   Authenticator
	logger *slog.Logger
}

// NewManager creates a session manager.
func NewManager(creds *Credentials, auth Authenticator, logger *slog.Logger) *Manager {
	return &Manager{
		creds:  creds,
		auth:   auth,
		logger: logger,
	}
}

// Login validates the form, authenticates against the backend, and persists
// the issued credential and account snapshot.
func (m *Manager) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	resp, err := m.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	// A success response without a token would persist an anonymous session.
	if resp.AccessToken == "" {
		return nil, apperrors.Protocol("login response missing access_token", nil)
	}

	if err := m.creds.Save(ctx, resp.AccessToken, resp.User); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	m.logger.InfoContext(ctx, "logged in",
		slog.Int64("user_id", resp.User.ID),
		slog.Bool("is_admin", resp.User.IsAdmin),
	)

	user := resp.User
	return &user, nil
}

// Register validates the form and creates a new account. The user still has
// to log in afterwards; registration does not issue a credential.
func (m *Manager) Register(ctx context.Context, input RegisterInput) error {
	if err := validator.Validate(input); err != nil {
		return err
	}

	if _, err := m.auth.Register(ctx, api.RegisterRequest{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	}); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	m.logger.InfoContext(ctx, "account registered",
		slog.String("email", input.Email),
	)
	return nil
}

// Logout discards the local credential state. The token itself is opaque to
// us; there is no server-side revocation call.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	m.logger.InfoContext(ctx, "logged out")
	return nil
}
