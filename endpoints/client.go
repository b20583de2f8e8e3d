package endpoints

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"usecart/responses"
)

// Get executes one authenticated GET round trip. Every completed
// response, success or error, may refresh the rate-limit snapshot
// before the result is returned.
func (c *Client) Get(ctx context.Context, path string, q *Query) (*responses.APIResponse, error) {
	req, err := c.newReq(ctx, path, q)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "request", URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: "read", URL: req.URL.String(), Err: err}
	}

	c.captureRateLimit(resp.Header)

	c.log.Debug("cart api request",
		"path", path,
		"status", resp.StatusCode,
		"took", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.errorFromResponse(resp, b)
		c.log.Warn("cart api error",
			"path", path,
			"status", resp.StatusCode,
			"err", apiErr,
		)
		return nil, apiErr
	}

	var out responses.APIResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, &TransportError{Op: "decode", URL: req.URL.String(), Err: err}
	}
	return &out, nil
}

// captureRateLimit overwrites the snapshot only when both headers are
// present and numeric; a partial pair leaves the previous value alone.
func (c *Client) captureRateLimit(h http.Header) {
	remaining := h.Get("X-RateLimit-Remaining")
	limit := h.Get("X-RateLimit-Limit")
	if remaining == "" || limit == "" {
		return
	}

	rem, err := strconv.Atoi(remaining)
	if err != nil {
		return
	}
	lim, err := strconv.Atoi(limit)
	if err != nil {
		return
	}

	c.rateLimit.Store(&responses.RateLimit{Remaining: rem, Limit: lim})
}
