package usecart

import (
	"context"

	"usecart/endpoints"
	"usecart/responses"
)

type SuppliersService struct {
	api *endpoints.Client
}

type SupplierSearchParams struct {
	Keyword  *string
	Page     *int
	PerPage  *int
	Sort     *string
	Location *string
	Type     *string
}

// Search searches suppliers. GET /v1/suppliers
func (s *SuppliersService) Search(ctx context.Context, p *SupplierSearchParams) (*responses.APIResponse, error) {
	q := &endpoints.Query{}
	if p != nil {
		q.Str("keyword", p.Keyword)
		q.Int("page", p.Page)
		q.Int("per_page", p.PerPage)
		q.Str("sort", p.Sort)
		q.Str("location", p.Location)
		q.Str("type", p.Type)
	}
	return s.api.Get(ctx, "/suppliers", q)
}
