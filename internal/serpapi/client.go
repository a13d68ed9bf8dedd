// Package serpapi wraps the SerpApi search client. It attaches the API key
// to every request and retries exactly once, after a fixed delay, when a
// call fails at the network level. API-level errors are never retried.
package serpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	serp "github.com/serpapi/google-search-results-golang"
)

// searchFunc executes one raw SerpApi request. Injectable for tests.
type searchFunc func(params map[string]string, apiKey string) (map[string]any, error)

// Client is the upstream search client shared by all retailer queries.
type Client struct {
	apiKey     string
	retryDelay time.Duration
	log        *slog.Logger
	search     searchFunc
}

// New builds a client. The key may be empty; callers are expected to guard
// the missing-credential case before fetching.
func New(apiKey string, retryDelay time.Duration, log *slog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		retryDelay: retryDelay,
		log:        log,
		search:     doSearch,
	}
}

// Fetch runs one upstream query and returns the decoded JSON payload.
func (c *Client) Fetch(ctx context.Context, params map[string]string) (map[string]any, error) {
	data, err := c.search(params, c.apiKey)
	if err == nil {
		return data, nil
	}
	if !isNetworkError(err) {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}

	c.log.Warn("upstream network error, retrying once",
		slog.String("engine", params["engine"]),
		slog.Any("err", err),
	)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	data, err = c.search(params, c.apiKey)
	if err != nil {
		return nil, fmt.Errorf("serpapi retry: %w", err)
	}
	return data, nil
}

func doSearch(params map[string]string, apiKey string) (map[string]any, error) {
	search := serp.NewGoogleSearch(params, apiKey)
	return search.GetJSON()
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host")
}
