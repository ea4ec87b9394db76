// Package backend contains the typed clients for the upstream QuickCourt REST
// API. Every data-bearing operation in the portal is delegated here; the
// package owns the request shapes, the success/error envelope, and principal
// forwarding, so no handler talks to the upstream directly.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sonalgupta2005/game-time-go/internal/api/metrics"
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// Error is an upstream failure carrying the upstream-supplied message.
// Error() returns the message verbatim so it can be shown to the user.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Generic fallbacks when no structured message is available.
const (
	msgNetworkError  = "network error"
	msgRequestFailed = "request failed"
)

type identityKey struct{}

// WithIdentity attaches the acting principal to the context. The client
// forwards it to the upstream as trusted edge headers.
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func identityFrom(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return id
}

// Client is the shared HTTP transport for all upstream surfaces.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// getJSON issues a GET and decodes the 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// postJSON issues a POST with a JSON body and decodes the 2xx body into out
// (out may be nil when the response body is irrelevant).
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// putJSON issues a PUT with a JSON body.
func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out)
}

// deleteJSON issues a DELETE.
func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path, out)
}

// doMultipart issues a multipart request built by the caller via build.
func (c *Client) doMultipart(ctx context.Context, method, path string, contentType string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.send(req, path, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if identity := identityFrom(ctx); identity != nil {
		req.Header.Set("X-User-ID", fmt.Sprintf("%d", identity.ID))
		req.Header.Set("X-User-Role", string(identity.Role))
	}
	return req, nil
}

// send executes the request and applies the canonical envelope: 2xx decodes
// into out, anything else becomes an *Error with the {message} body or a
// generic fallback when the body is not well-formed JSON.
func (c *Client) send(req *http.Request, endpoint string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("upstream request failed")
		return &Error{Status: 0, Message: msgNetworkError}
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestDuration.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: msgNetworkError}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: msgRequestFailed}
	}
	return nil
}

// Ping probes the upstream health endpoint. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil, nil)
}

func decodeError(status int, raw []byte) *Error {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Message == "" {
		return &Error{Status: status, Message: msgRequestFailed}
	}
	return &Error{Status: status, Message: envelope.Message}
}
