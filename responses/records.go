package responses

// Resource records returned inside APIResponse.Data. The API fills
// them partially depending on the endpoint and the store's data
// coverage, so most fields carry their zero value when absent.

type Store struct {
	Domain               string  `json:"domain"`
	Platform             string  `json:"platform"`
	Currency             string  `json:"currency"`
	ProductsCount        int     `json:"products_count"`
	VendorsCount         int     `json:"vendors_count"`
	MonthlyVisitors      int     `json:"monthly_visitors"`
	MonthlyVisitorsTrend float64 `json:"monthly_visitors_trend"`
	BounceRate           float64 `json:"bounce_rate"`
	AvgVisitLength       float64 `json:"avg_visit_length"`
	PagesPerVisit        float64 `json:"pages_per_visit"`
	Language             string  `json:"language"`
	MetaTitle            string  `json:"meta_title"`
	MetaDescription      string  `json:"meta_description"`
	IsLive               bool    `json:"is_live"`
	IsDropshipping       bool    `json:"is_dropshipping"`
	IsPOD                bool    `json:"is_pod"`
	Facebook             *string `json:"facebook"`
	Twitter              *string `json:"twitter"`
	Instagram            *string `json:"instagram"`
	CreatedAt            string  `json:"created_at"`
}

type Product struct {
	ID           string  `json:"id"`
	StoreDomain  string  `json:"store_domain"`
	Title        string  `json:"title"`
	Handle       string  `json:"handle"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	InitialPrice float64 `json:"initial_price"`
	Currency     string  `json:"currency"`
	Vendor       string  `json:"vendor"`
	AddedAt      string  `json:"added_at"`
}

type TrafficGeo struct {
	Country    string  `json:"country"`
	Percentage float64 `json:"percentage"`
}

type TrafficSource struct {
	Direct    float64 `json:"direct"`
	Search    float64 `json:"search"`
	Social    float64 `json:"social"`
	Mail      float64 `json:"mail"`
	Display   float64 `json:"display"`
	Referrals float64 `json:"referrals"`
}

type StoreTraffic struct {
	MonthlyVisitors int           `json:"monthly_visitors"`
	Trend           float64       `json:"trend"`
	BounceRate      float64       `json:"bounce_rate"`
	AvgVisitLength  float64       `json:"avg_visit_length"`
	PagesPerVisit   float64       `json:"pages_per_visit"`
	TrafficByGeo    []TrafficGeo  `json:"traffic_by_geo"`
	TrafficBySource TrafficSource `json:"traffic_by_source"`
}

type StoreTechItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// StoreTech is the payload of the store tech endpoint.
type StoreTech = []StoreTechItem

type Ad struct {
	ID          string `json:"id"`
	StoreDomain string `json:"store_domain"`
	Platform    string `json:"platform"`
	Image       string `json:"image"`
	LandingURL  string `json:"landing_url"`
	FirstSeen   string `json:"first_seen"`
	LastSeen    string `json:"last_seen"`
}

type Supplier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	ProductTypes []string `json:"product_types"`
}

type NicheOverview struct {
	Keyword          string    `json:"keyword"`
	TotalStores      int       `json:"total_stores"`
	TotalProducts    int       `json:"total_products"`
	AvgPrice         float64   `json:"avg_price"`
	TopStores        []Store   `json:"top_stores"`
	TrendingProducts []Product `json:"trending_products"`
}

type Account struct {
	Email         string `json:"email"`
	Plan          string `json:"plan"`
	RequestsToday int    `json:"requests_today"`
	RequestsLimit int    `json:"requests_limit"`
}

type TrendingData struct {
	Stores   []Store   `json:"stores"`
	Products []Product `json:"products"`
}
