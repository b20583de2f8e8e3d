// Package usecart is a typed Go client for the Cart e-commerce
// intelligence API. One Cart owns one transport; the resource services
// hanging off it are thin path/query builders over that transport.
//
//	cart, err := usecart.New("cart_sk_...", usecart.Options{})
//	if err != nil { ... }
//	resp, err := cart.Stores.Search(ctx, &usecart.StoreSearchParams{
//		Keyword: usecart.String("fitness"),
//	})
package usecart

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"usecart/endpoints"
	"usecart/internal/httpc"
	"usecart/responses"
)

const DefaultBaseURL = "https://api.usecart.com/v1"

const Version = endpoints.Version

// ErrAPIKeyRequired is returned by New before any network activity.
var ErrAPIKeyRequired = errors.New("usecart: api key is required")

type Options struct {
	// BaseURL overrides DefaultBaseURL; the trailing slash is ignored.
	BaseURL string

	// HTTPClient lets callers supply their own transport (proxies,
	// instrumentation). Defaults to a tuned net/http client.
	HTTPClient endpoints.Doer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

type Cart struct {
	api *endpoints.Client

	Stores    *StoresService
	Products  *ProductsService
	Ads       *AdsService
	Suppliers *SuppliersService
	Niches    *NichesService
}

func New(apiKey string, opts Options) (*Cart, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = httpc.New(30 * time.Second)
	}

	api := endpoints.New(opts.HTTPClient, opts.BaseURL, apiKey, opts.Logger)

	return &Cart{
		api:       api,
		Stores:    &StoresService{api: api},
		Products:  &ProductsService{api: api},
		Ads:       &AdsService{api: api},
		Suppliers: &SuppliersService{api: api},
		Niches:    &NichesService{api: api},
	}, nil
}

// RateLimit is the snapshot from the most recently completed request,
// nil until the first one finishes. With concurrent calls it is
// last-writer-wins, so it may belong to a different request than the
// one just inspected.
func (c *Cart) RateLimit() *responses.RateLimit {
	return c.api.RateLimit()
}

type TrendingParams struct {
	Page     *int
	PerPage  *int
	Category *string
}

// Trending returns trending stores and products. GET /v1/trending
func (c *Cart) Trending(ctx context.Context, p *TrendingParams) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	if p != nil {
		q.Int("page", p.Page)
		q.Int("per_page", p.PerPage)
		q.Str("category", p.Category)
	}
	return c.api.Get(ctx, "/trending", q)
}

// Account returns the authenticated account details. GET /v1/account
func (c *Cart) Account(ctx context.Context) (*responses.APIResponse, error) {
	return c.api.Get(ctx, "/account", nil)
}
