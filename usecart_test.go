package usecart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usecart/responses"
)

// newTestCart returns a client wired to a stub server and a pointer to
// the request URI the server saw last.
func newTestCart(t *testing.T) (*Cart, *string) {
	t.Helper()

	var lastURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastURI = r.URL.RequestURI()
		w.Header().Set("X-RateLimit-Remaining", "41")
		w.Header().Set("X-RateLimit-Limit", "100")
		w.Write([]byte(`{"data":null,"meta":{"request_id":"req_t"},"usage":{"requests_today":1,"limit":100}}`))
	}))
	t.Cleanup(srv.Close)

	cart, err := New("cart_sk_test", Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)
	return cart, &lastURI
}

func TestNewRequiresAPIKey(t *testing.T) {
	cart, err := New("", Options{})
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}

func TestNewDefaults(t *testing.T) {
	cart, err := New("cart_sk_test", Options{})
	require.NoError(t, err)

	require.NotNil(t, cart.Stores)
	require.NotNil(t, cart.Products)
	require.NotNil(t, cart.Ads)
	require.NotNil(t, cart.Suppliers)
	require.NotNil(t, cart.Niches)
	assert.Nil(t, cart.RateLimit())
}

func TestStoresSearchQuery(t *testing.T) {
	cart, uri := newTestCart(t)

	_, err := cart.Stores.Search(context.Background(), &StoreSearchParams{
		Keyword: String("fitness"),
		HasAds:  Bool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "/stores?keyword=fitness&has_ads=true", *uri)
}

func TestStoresSearchAllParams(t *testing.T) {
	cart, uri := newTestCart(t)

	_, err := cart.Stores.Search(context.Background(), &StoreSearchParams{
		Keyword:    String("yoga mats"),
		Page:       Int(2),
		PerPage:    Int(50),
		Sort:       String("traffic"),
		Platform:   String("shopify"),
		Language:   String("en"),
		Currency:   String("USD"),
		BizModel:   String("dropshipping"),
		HasAds:     Bool(false),
		Status:     String("live"),
		MinTraffic: Int(10000),
	})
	require.NoError(t, err)
	assert.Equal(t,
		"/stores?keyword=yoga%20mats&page=2&per_page=50&sort=traffic&platform=shopify"+
			"&language=en&currency=USD&biz_model=dropshipping&has_ads=false&status=live&min_traffic=10000",
		*uri)
}

func TestStoresSearchNilParams(t *testing.T) {
	cart, uri := newTestCart(t)

	_, err := cart.Stores.Search(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/stores", *uri)
}

func TestStoresSearchIdempotentURI(t *testing.T) {
	cart, uri := newTestCart(t)
	p := &StoreSearchParams{Keyword: String("fitness"), Page: Int(1)}

	_, err := cart.Stores.Search(context.Background(), p)
	require.NoError(t, err)
	first := *uri

	_, err = cart.Stores.Search(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, first, *uri)
}

func TestStorePaths(t *testing.T) {
	cart, uri := newTestCart(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"get", func() error { _, err := cart.Stores.Get(ctx, "gymshark.com"); return err }, "/stores/gymshark.com"},
		{"products", func() error {
			_, err := cart.Stores.Products(ctx, "gymshark.com", &StoreProductsParams{Page: Int(3)})
			return err
		}, "/stores/gymshark.com/products?page=3"},
		{"ads", func() error { _, err := cart.Stores.Ads(ctx, "gymshark.com"); return err }, "/stores/gymshark.com/ads"},
		{"traffic", func() error { _, err := cart.Stores.Traffic(ctx, "gymshark.com"); return err }, "/stores/gymshark.com/traffic"},
		{"tech", func() error { _, err := cart.Stores.Tech(ctx, "gymshark.com"); return err }, "/stores/gymshark.com/tech"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.want, *uri)
		})
	}
}

func TestStoresCompare(t *testing.T) {
	cart, uri := newTestCart(t)

	_, err := cart.Stores.Compare(context.Background(), []string{"a.com", "b.com"})
	require.NoError(t, err)
	assert.Equal(t, "/stores/compare?domains=a.com,b.com", *uri)
}

func TestProductsEndpoints(t *testing.T) {
	cart, uri := newTestCart(t)
	ctx := context.Background()

	_, err := cart.Products.Search(ctx, &ProductSearchParams{
		Keyword:  String("resistance bands"),
		MinPrice: Float(9.99),
		MaxPrice: Float(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "/products?keyword=resistance%20bands&min_price=9.99&max_price=50", *uri)

	_, err = cart.Products.Get(ctx, "prod_123")
	require.NoError(t, err)
	assert.Equal(t, "/products/prod_123", *uri)

	_, err = cart.Products.Trending(ctx, &ProductTrendingParams{Category: String("fitness")})
	require.NoError(t, err)
	assert.Equal(t, "/products/trending?category=fitness", *uri)
}

func TestAdsEndpoints(t *testing.T) {
	cart, uri := newTestCart(t)
	ctx := context.Background()

	_, err := cart.Ads.Search(ctx, &AdSearchParams{
		Platform:    String("facebook"),
		StoreDomain: String("gymshark.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/ads?platform=facebook&store_domain=gymshark.com", *uri)

	_, err = cart.Ads.Get(ctx, "ad_77")
	require.NoError(t, err)
	assert.Equal(t, "/ads/ad_77", *uri)
}

func TestSuppliersSearch(t *testing.T) {
	cart, uri := newTestCart(t)

	_, err := cart.Suppliers.Search(context.Background(), &SupplierSearchParams{
		Location: String("CN"),
		Type:     String("manufacturer"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/suppliers?location=CN&type=manufacturer", *uri)
}

func TestNichesGetEscapesKeyword(t *testing.T) {
	cart, uri := newTestCart(t)

	_, err := cart.Niches.Get(context.Background(), "yoga mats")
	require.NoError(t, err)
	assert.Equal(t, "/niches/yoga%20mats", *uri)
}

func TestTopLevelCalls(t *testing.T) {
	cart, uri := newTestCart(t)
	ctx := context.Background()

	_, err := cart.Trending(ctx, &TrendingParams{Page: Int(1), Category: String("fitness")})
	require.NoError(t, err)
	assert.Equal(t, "/trending?page=1&category=fitness", *uri)

	_, err = cart.Trending(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "/trending", *uri)

	resp, err := cart.Account(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/account", *uri)
	assert.Equal(t, "req_t", resp.Meta.RequestID)
}

func TestRateLimitExposedOnFacade(t *testing.T) {
	cart, _ := newTestCart(t)

	require.Nil(t, cart.RateLimit())

	_, err := cart.Account(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &responses.RateLimit{Remaining: 41, Limit: 100}, cart.RateLimit())
}
