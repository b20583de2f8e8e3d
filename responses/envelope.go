package responses

import "encoding/json"

// APIResponse wraps every successful Cart API body. Data is the raw
// endpoint-specific payload; callers decode it into the record type
// they expect (Store, []Product, ...).
type APIResponse struct {
	Data  json.RawMessage `json:"data"`
	Meta  Meta            `json:"meta"`
	Usage Usage           `json:"usage"`
}

type Meta struct {
	RequestID    string `json:"request_id"`
	Timestamp    string `json:"timestamp"`
	Page         int    `json:"page"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

type Usage struct {
	RequestsToday int `json:"requests_today"`
	Limit         int `json:"limit"`
}

// RateLimit is the most recent {remaining, limit} pair observed in the
// X-RateLimit-* response headers.
type RateLimit struct {
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}
