// Package api is the typed client for the ordering backend. It owns request
// encoding, bearer-credential headers, and the classification of every
// failure into the shared error taxonomy. Nothing downstream ever inspects
// response bodies or error strings.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	apperrors "github.com/jay10z/it-equipment-ordering-system/pkg/errors"
	"github.com/jay10z/it-equipment-ordering-system/pkg/logger"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Doer executes HTTP requests. Both httpclient.Client and
// httpclient.CircuitBreakerClient satisfy this.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// TokenSource supplies the current bearer credential, if any.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_api_requests_total",
		Help: "Total API requests by method, endpoint and outcome status",
	},
	[]string{"method", "endpoint", "status"},
)

func init() {
	prometheus.MustRegister(requestsTotal)
}

// Client talks to the ordering backend.
type Client struct {
	baseURL string
	doer    Doer
	tokens  TokenSource
	logger  *slog.Logger
}

// NewClient creates an API client. baseURL is the API root, e.g.
// "http://127.0.0.1:5000/api".
func NewClient(baseURL string, doer Doer, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		tokens:  tokens,
		logger:  log,
	}
}

// messageBody matches the error/info message fields the backend uses.
type messageBody struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

// do executes one API request. body is JSON-encoded when non-nil; on a 2xx
// response the body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	correlationID := uuid.New().String()
	req.Header.Set("X-Request-ID", correlationID)
	ctx = logger.WithCorrelationID(ctx, correlationID)

	if token, ok := c.tokens.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
		logger.WithContext(ctx, c.logger).DebugContext(ctx, "attaching credential",
			slog.String("token", redactToken(token)),
		)
	}

	logger.WithContext(ctx, c.logger).DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("endpoint", endpoint),
	)

	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		requestsTotal.WithLabelValues(method, endpoint, "network_error").Inc()
		return apperrors.Network(err)
	}
	defer func() { _ = resp.Body.Close() }()

	requestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.Protocol("failed to read response body", err)
	}

	// Non-JSON bodies are normalized to {"message": <raw text>} so every
	// response decodes the same way.
	if !isJSONResponse(resp, raw) {
		raw, _ = json.Marshal(messageBody{Message: string(raw)})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.HTTP(resp.StatusCode, serverMessage(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.Protocol("unexpected response structure", err)
		}
	}
	return nil
}

// serverMessage extracts the backend's message field from an error body.
func serverMessage(raw []byte) string {
	var mb messageBody
	if err := json.Unmarshal(raw, &mb); err == nil {
		if mb.Message != "" {
			return mb.Message
		}
		if mb.Msg != "" {
			return mb.Msg
		}
	}
	return ""
}

// isJSONResponse reports whether the response should be treated as JSON,
// by content type first and body shape as a fallback.
func isJSONResponse(resp *http.Response, raw []byte) bool {
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "application/json") {
		return true
	}
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid(trimmed)
}

// redactToken truncates a credential for diagnostic output. The full value
// is never logged.
func redactToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:8] + "..."
}
