package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// RequestIDHeader carries a per-request correlation ID
	RequestIDHeader = "X-Request-ID"
)

// TokenSource supplies the bearer token attached to outgoing requests. The
// second return value reports whether a token is currently held.
type TokenSource interface {
	Token() (string, bool)
}

// Client is a JSON client for the finance REST API. Every request carries a
// request ID and, when the token source holds one, a bearer token.
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
	tokens     TokenSource
}

// NewClient creates a new API client.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// SetTokenSource sets the bearer token source. The session store is wired
// in here after construction, since it needs the client to reach the API.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Get performs a GET request and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, query, nil, result)
}

// Post performs a POST request with a JSON body and decodes the response.
func (c *Client) Post(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, nil, body, result)
}

// Patch performs a PATCH request with a JSON body and decodes the response.
func (c *Client) Patch(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPatch, endpoint, nil, body, result)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, query url.Values, body, result interface{}) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.New().String())
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
