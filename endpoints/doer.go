package endpoints

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"usecart/responses"
)

const Version = "0.1.0"

const userAgent = "usecart-go/" + Version

// Cart API bodies are small; anything past this is a broken response.
const maxBodyBytes = 4 * 1024 * 1024

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues authenticated GET requests against the Cart API and
// normalizes results into responses.APIResponse or a typed error.
type Client struct {
	doer    Doer
	baseURL string
	apiKey  string
	log     *slog.Logger

	rateLimit atomic.Pointer[responses.RateLimit]
}

func New(doer Doer, baseURL, apiKey string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		doer:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		log:     log,
	}
}

// RateLimit returns the snapshot from the most recently completed
// request, nil before the first one. Under concurrent use the value is
// last-writer-wins: it reflects whichever response finished last, not
// necessarily the one the caller just made.
func (c *Client) RateLimit() *responses.RateLimit {
	return c.rateLimit.Load()
}

func (c *Client) newReq(ctx context.Context, path string, q *Query) (*http.Request, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return req, nil
}
