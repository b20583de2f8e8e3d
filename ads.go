package usecart

import (
	"context"
	"net/url"

	"usecart/endpoints"
	"usecart/responses"
)

type AdsService struct {
	api *endpoints.Client
}

type AdSearchParams struct {
	Keyword     *string
	Page        *int
	PerPage     *int
	Sort        *string
	Platform    *string
	StoreDomain *string
}

// Search searches ads. GET /v1/ads
func (s *AdsService) Search(ctx context.Context, p *AdSearchParams) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	if p != nil {
		q.Str("keyword", p.Keyword)
		q.Int("page", p.Page)
		q.Int("per_page", p.PerPage)
		q.Str("sort", p.Sort)
		q.Str("platform", p.Platform)
		q.Str("store_domain", p.StoreDomain)
	}
	return s.api.Get(ctx, "/ads", q)
}

// Get fetches one ad by ID. GET /v1/ads/:id
func (s *AdsService) Get(ctx context.Context, id string) (*responses.APIResponse, error) {
	return s.api.Get(ctx, "/ads/"+url.PathEscape(id), nil)
}
