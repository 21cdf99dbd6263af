// Package errors defines the error taxonomy shared by the storefront client.
// Every failure the core can report is classified here once, at the boundary
// that observed it; callers branch with errors.Is / errors.As and never by
// inspecting message text.
package errors

import (
	"errors"
	"fmt"
	"html"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNetwork          = errors.New("network unreachable")
	ErrHTTP             = errors.New("http error")
	ErrProtocol         = errors.New("protocol error")
	ErrInvalidInput     = errors.New("invalid input")
)

// AppError represents a structured application error. Status carries the
// upstream HTTP status code when the error originated from a server response,
// and is zero otherwise.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a not-found error for a local lookup miss.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Err:     ErrNotFound,
	}
}

// NotAuthenticated creates an error for operations that require a credential.
func NotAuthenticated(message string) *AppError {
	return &AppError{
		Code:    "NOT_AUTHENTICATED",
		Message: message,
		Err:     ErrNotAuthenticated,
	}
}

// EmptyCart creates an error for checkout attempts on an empty cart.
func EmptyCart() *AppError {
	return &AppError{
		Code:    "EMPTY_CART",
		Message: "cart has no items",
		Err:     ErrEmptyCart,
	}
}

// Network creates an error for a transport-level failure: the server could
// not be reached at all, so no HTTP status exists.
func Network(err error) *AppError {
	return &AppError{
		Code:    "NETWORK_ERROR",
		Message: "cannot connect to server",
		Err:     errors.Join(ErrNetwork, err),
	}
}

// HTTP creates an error for a response whose status indicates failure.
// message is the server-provided message, if any.
func HTTP(status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("server returned status %d", status)
	}
	return &AppError{
		Code:    "HTTP_ERROR",
		Message: message,
		Status:  status,
		Err:     ErrHTTP,
	}
}

// Protocol creates an error for a response body that could not be parsed as
// the expected structure.
func Protocol(message string, err error) *AppError {
	return &AppError{
		Code:    "PROTOCOL_ERROR",
		Message: message,
		Err:     errors.Join(ErrProtocol, err),
	}
}

// InvalidInput creates an error for locally rejected input.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// UserMessage maps any error to a single user-facing string. Server-provided
// text is untrusted, so the result is HTML-escaped before display.
func UserMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return html.EscapeString(err.Error())
	}

	switch {
	case errors.Is(appErr, ErrNotAuthenticated):
		return "Please log in to continue."
	case errors.Is(appErr, ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(appErr, ErrNetwork):
		return "Cannot connect to server. Please ensure the backend is reachable."
	case errors.Is(appErr, ErrHTTP) && appErr.Status == http.StatusUnauthorized:
		return "Authentication failed. Please log in again."
	case errors.Is(appErr, ErrHTTP) && appErr.Status == http.StatusBadRequest:
		return html.EscapeString("Invalid request: " + appErr.Message)
	case errors.Is(appErr, ErrProtocol):
		return "The server sent an unexpected response. Please try again."
	default:
		return html.EscapeString(appErr.Message)
	}
}
