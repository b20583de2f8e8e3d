package usecart

import (
	"context"
	"net/url"

	"usecart/endpoints"
	"usecart/responses"
)

// StoresService groups the store endpoints. It borrows the transport
// owned by Cart and does no work beyond building the path and query.
type StoresService struct {
	api *endpoints.Client
}

type StoreSearchParams struct {
	Keyword    *string
	Page       *int
	PerPage    *int
	Sort       *string
	Platform   *string
	Language   *string
	Currency   *string
	BizModel   *string
	HasAds     *bool
	Status     *string
	MinTraffic *int
}

// Search searches stores. GET /v1/stores
func (s *StoresService) Search(ctx context.Context, p *StoreSearchParams) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	if p != nil {
		q.Str("keyword", p.Keyword)
		q.Int("page", p.Page)
		q.Int("per_page", p.PerPage)
		q.Str("sort", p.Sort)
		q.Str("platform", p.Platform)
		q.Str("language", p.Language)
		q.Str("currency", p.Currency)
		q.Str("biz_model", p.BizModel)
		q.Bool("has_ads", p.HasAds)
		q.Str("status", p.Status)
		q.Int("min_traffic", p.MinTraffic)
	}
	return s.api.Get(ctx, "/stores", q)
}

// Get fetches one store by domain. GET /v1/stores/:domain
func (s *StoresService) Get(ctx context.Context, domain string) (*responses.APIResponse, error) {
	return s.api.Get(ctx, "/stores/"+url.PathEscape(domain), nil)
}

type StoreProductsParams struct {
	Page    *int
	PerPage *int
	Sort    *string
}

// Products lists a store's products. GET /v1/stores/:domain/products
func (s *StoresService) Products(ctx context.Context, domain string, p *StoreProductsParams) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	if p != nil {
		q.Int("page", p.Page)
		q.Int("per_page", p.PerPage)
		q.Str("sort", p.Sort)
	}
	return s.api.Get(ctx, "/stores/"+url.PathEscape(domain)+"/products", q)
}

// Ads lists a store's ads. GET /v1/stores/:domain/ads
func (s *StoresService) Ads(ctx context.Context, domain string) (*responses.APIResponse, error) {
	return s.api.Get(ctx, "/stores/"+url.PathEscape(domain)+"/ads", nil)
}

// Traffic returns a store's traffic data. GET /v1/stores/:domain/traffic
func (s *StoresService) Traffic(ctx context.Context, domain string) (*responses.APIResponse, error) {
	return s.api.Get(ctx, "/stores/"+url.PathEscape(domain)+"/traffic", nil)
}

// Tech returns a store's technology stack. GET /v1/stores/:domain/tech
func (s *StoresService) Tech(ctx context.Context, domain string) (*responses.APIResponse, error) {
	return s.api.Get(ctx, "/stores/"+url.PathEscape(domain)+"/tech", nil)
}

// Compare compares stores side by side.
// GET /v1/stores/compare?domains=a.com,b.com
func (s *StoresService) Compare(ctx context.Context, domains []string) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	q.List("domains", domains)
	return s.api.Get(ctx, "/stores/compare", q)
}
