package models

import "compass-server/models/restaurant"

// Sort keys accepted by the search endpoint.
const (
	SortByDistance = "distance"
	SortByRating   = "rating"
)

// Price bands with their hard thresholds in VND. A price of exactly 25000 or
// 50000 belongs to the mid band.
const (
	PriceRangeLow  = "low"
	PriceRangeMid  = "mid"
	PriceRangeHigh = "high"
)

// SearchQuery is the per-request search value object. Empty list fields and
// an empty queryText are no-op filters.
type SearchQuery struct {
	UserLocation restaurant.Coordinates
	QueryText    string
	RadiusKm     float64
	PriceRange   string
	SortBy       string
	OpenNow      bool
	Cuisines     []string
	SpecialFlags []string
}

// SearchRequest mirrors the POST /v1/search JSON body. Pointer fields
// distinguish absent from zero so defaults can be applied.
type SearchRequest struct {
	UserLatitude  *float64 `json:"userLatitude"`
	UserLongitude *float64 `json:"userLongitude"`
	QueryText     string   `json:"queryText"`
	RadiusKm      *float64 `json:"radiusKm"`
	PriceRange    string   `json:"priceRange"`
	SortBy        string   `json:"sortBy"`
	OpenNow       bool     `json:"openNow"`
	Cuisines      []string `json:"cuisines"`
	SpecialFlags  []string `json:"specialFlags"`
}

// SearchResult is a catalog record augmented with the per-request overlay.
// The POST /v1/search response body is the bare array of these records.
// The embedded Restaurant is a copy; its DistanceText is overwritten with the
// freshly computed human-readable distance.
type SearchResult struct {
	restaurant.Restaurant
	CalculatedDistanceKm float64 `json:"calculated_distance_km"`
	OpenStatusText       string  `json:"open_status_text"`
}
