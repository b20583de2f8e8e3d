package usecart

import (
	"context"
	"net/url"

	"usecart/endpoints"
	"usecart/responses"
)

type NichesService struct {
	api *endpoints.Client
}

// Get returns a niche overview by keyword. GET /v1/niches/:keyword
func (s *NichesService) Get(ctx context.Context, keyword string) (*responses.APIResponse, error) {
	return s.api.Get(ctx, "/niches/"+url.PathEscape(keyword), nil)
}
