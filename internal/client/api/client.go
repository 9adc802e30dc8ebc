package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/printdvor/storefront-cli/internal/client/config"
	"github.com/printdvor/storefront-cli/internal/common"
	"github.com/printdvor/storefront-cli/internal/logging"
	"github.com/printdvor/storefront-cli/internal/telemetry"
)

const refreshPath = "auth/refresh"

// TokenSource supplies the transport with the current token pair and accepts
// refreshed tokens. The session store satisfies it; calls without a signed-in
// user simply go out unauthenticated.
type TokenSource interface {
	Token() string
	RefreshToken() string
	SetTokens(ctx context.Context, token, refreshToken string) error
	TokenExpired() bool
}

// Client talks to the print-shop backend. Safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	log       logging.Logger
	cache     *queryCache
	refreshMu sync.Mutex
}

// New builds a Client from config. The transport is instrumented with
// otelhttp; tracing stays dormant unless an OTLP endpoint is configured.
func New(cfg *config.Config, tokens TokenSource, log logging.Logger) *Client {
	base := cfg.APIBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: telemetry.WrapTransport(nil),
		},
		tokens: tokens,
		log:    log,
		cache:  newQueryCache(),
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// roundTrip performs one attempt. The body is a byte slice so retries can
// replay it.
func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, contentType string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			// The backend expects the raw token, no "Bearer " prefix.
			req.Header.Set(common.AuthHeaderName, token)
		}
	}

	return c.http.Do(req)
}

// send performs a request with the standard token handling:
//
//   - a token the client already knows to be expired is refreshed up front,
//   - a 401 response triggers one refresh-and-retry when a refresh token is
//     available,
//   - transport failures map to ErrUnavailable, non-2xx to *APIError.
//
// It returns the raw response body.
func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	if c.canRefresh(path) && c.tokens.TokenExpired() {
		if err := c.refreshTokens(ctx); err != nil {
			c.log.Debug(ctx, "proactive token refresh failed", "error", err)
		}
	}

	data, status, err := c.attempt(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized && c.canRefresh(path) {
		if refreshErr := c.refreshTokens(ctx); refreshErr == nil {
			data, status, err = c.attempt(ctx, method, path, body, contentType)
			if err != nil {
				return nil, err
			}
		}
	}

	if status < 200 || status > 299 {
		return nil, newAPIError(status, data)
	}
	return data, nil
}

func (c *Client) attempt(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, int, error) {
	resp, err := c.roundTrip(ctx, method, path, body, contentType)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, resp.StatusCode, nil
}

func (c *Client) canRefresh(path string) bool {
	return c.tokens != nil && c.tokens.RefreshToken() != "" && path != refreshPath
}

// doJSON sends an optional JSON body and decodes the response into out
// (skipped when out is nil or the body is empty).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	contentType := ""
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		contentType = "application/json"
	}

	data, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// getCached serves a GET from the query cache when the tag is warm,
// otherwise fetches and stores the raw response under the tag.
func (c *Client) getCached(ctx context.Context, tag, path string, out any) error {
	if data, ok := c.cache.get(path); ok {
		return json.Unmarshal(data, out)
	}

	data, err := c.send(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	c.cache.put(tag, path, data)

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
