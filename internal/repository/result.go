package repository

import (
	"encoding/json"

	"usecart/responses"
)

type QueryMeta struct {
	Command string `json:"command"`
	Keyword string `json:"keyword,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

// FetchResult is what the CLI persists: the raw API payload plus
// enough surrounding context to make the file useful on its own.
type FetchResult struct {
	FetchedAt string               `json:"fetched_at"`
	Query     QueryMeta            `json:"query"`
	Data      json.RawMessage      `json:"data"`
	Meta      responses.Meta       `json:"meta"`
	Usage     responses.Usage      `json:"usage"`
	RateLimit *responses.RateLimit `json:"rate_limit,omitempty"`
}
