package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// APIError is the base error for any non-2xx Cart API response. Status,
// Code and RequestID are kept structured so callers can correlate a
// failure with the server side without re-parsing anything.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("cart api: status=%d code=%s request_id=%s message=%s",
			e.Status, e.Code, e.RequestID, e.Message)
	}
	return fmt.Sprintf("cart api: status=%d code=%s message=%s", e.Status, e.Code, e.Message)
}

// AuthError is returned on 401: the API key is missing, invalid or
// revoked. Status/Code are fixed at 401/"auth_error".
type AuthError struct {
	APIError
}

// Unwrap lets errors.As match the base *APIError too.
func (e *AuthError) Unwrap() error { return &e.APIError }

// RateLimitError is returned on 429. The hint fields are nil when the
// server did not provide them.
type RateLimitError struct {
	APIError

	RetryAfter         *int // seconds, from the Retry-After header
	RateLimit          *int
	RateLimitRemaining *int
}

func (e *RateLimitError) Unwrap() error { return &e.APIError }

// TransportError wraps failures below the API protocol: DNS,
// connection, read and body-decode errors. Distinct from APIError so
// callers can tell "the API said no" from "we never got an answer".
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cart transport: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

// errorFromResponse maps a non-2xx response onto the typed error set.
// A malformed or missing error body falls back to generic defaults;
// the API's error contract is loose and we keep it that way.
func (c *Client) errorFromResponse(resp *http.Response, body []byte) error {
	status := resp.StatusCode
	code := "unknown_error"
	message := fmt.Sprintf("Cart API error: %d", status)
	requestID := ""

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if eb.Error.Code != "" {
			code = eb.Error.Code
		}
		if eb.Error.Message != "" {
			message = eb.Error.Message
		}
		requestID = eb.Error.RequestID
	}

	switch status {
	case http.StatusUnauthorized:
		return &AuthError{APIError{
			Status:    status,
			Code:      "auth_error",
			Message:   message,
			RequestID: requestID,
		}}

	case http.StatusTooManyRequests:
		out := &RateLimitError{APIError: APIError{
			Status:    status,
			Code:      "rate_limit_exceeded",
			Message:   message,
			RequestID: requestID,
		}}
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if sec, err := strconv.Atoi(ra); err == nil {
				out.RetryAfter = &sec
			}
		}
		if rl := c.rateLimit.Load(); rl != nil {
			lim, rem := rl.Limit, rl.Remaining
			out.RateLimit = &lim
			out.RateLimitRemaining = &rem
		}
		return out

	default:
		return &APIError{
			Status:    status,
			Code:      code,
			Message:   message,
			RequestID: requestID,
		}
	}
}
