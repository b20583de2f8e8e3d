package usecart

import (
	"context"
	"net/url"

	"usecart/endpoints"
	"usecart/responses"
)

type ProductsService struct {
	api *endpoints.Client
}

type ProductSearchParams struct {
	Keyword  *string
	Page     *int
	PerPage  *int
	Sort     *string
	MinPrice *float64
	MaxPrice *float64
	Currency *string
}

// Search searches products across stores. GET /v1/products
func (s *ProductsService) Search(ctx context.Context, p *ProductSearchParams) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	if p != nil {
		q.Str("keyword", p.Keyword)
		q.Int("page", p.Page)
		q.Int("per_page", p.PerPage)
		q.Str("sort", p.Sort)
		q.Float("min_price", p.MinPrice)
		q.Float("max_price", p.MaxPrice)
		q.Str("currency", p.Currency)
	}
	return s.api.Get(ctx, "/products", q)
}

// Get fetches one product by ID. GET /v1/products/:id
func (s *ProductsService) Get(ctx context.Context, id string) (*responses.APIResponse, error) {
	return s.api.Get(ctx, "/products/"+url.PathEscape(id), nil)
}

type ProductTrendingParams struct {
	Page     *int
	PerPage  *int
	Category *string
}

// Trending lists trending products. GET /v1/products/trending
func (s *ProductsService) Trending(ctx context.Context, p *ProductTrendingParams) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	if p != nil {
		q.Int("page", p.Page)
		q.Int("per_page", p.PerPage)
		q.Str("category", p.Category)
	}
	return s.api.Get(ctx, "/products/trending", q)
}
