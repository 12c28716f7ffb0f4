package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 4 * 1024 * 1024

// Client is the shared rate-limited HTTP client for provider API calls.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client with default timeout and rate limit.
func NewClient() *Client {
	return NewClientWithConfig(10*time.Second, 2)
}

// NewClientWithConfig creates a client with a custom request timeout and
// request rate. The limiter keeps per-source fan-out from bursting
// against a provider API.
func NewClientWithConfig(timeout time.Duration, requestsPerSec float64) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), 1),
	}
}

// GetJSON performs a rate-limited GET against endpoint with the given
// query parameters and returns the response body.
func (c *Client) GetJSON(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	requestURL := endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "newswire/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
