package models

import "compass-server/models/restaurant"

// Search scopes for the simple tour search.
const (
	TourSearchByName = "name"
	TourSearchByTags = "tags"
	TourSearchAll    = "all"
)

// TourSearchQuery is the text-only search used by the tour designer.
type TourSearchQuery struct {
	QueryText string `json:"queryText"`
	SearchBy  string `json:"searchBy"`
}

// TourSearchResult annotates a matching restaurant with the field the match
// was found in ("name" or "tags").
type TourSearchResult struct {
	restaurant.Restaurant
	MatchField string `json:"match_field"`
}

// TourSearchResponse is the POST /v1/tour/search payload.
type TourSearchResponse struct {
	Query    string             `json:"query"`
	SearchBy string             `json:"searchBy"`
	Count    int                `json:"count"`
	Results  []TourSearchResult `json:"results"`
}

// TourRestaurantsResponse is the GET /v1/tour/restaurants payload.
type TourRestaurantsResponse struct {
	Count       int                     `json:"count"`
	Restaurants []restaurant.Restaurant `json:"restaurants"`
}

// RouteRequest carries a venue id for the route add/remove endpoints. The
// pointer distinguishes a missing id from id 0.
type RouteRequest struct {
	RestaurantID *int `json:"restaurant_id"`
}

// RouteStatusResponse echoes the mutation outcome and the current route ids.
type RouteStatusResponse struct {
	Status string `json:"status"`
	Route  []int  `json:"route"`
}

// RouteResponse is the GET /v1/tour/route payload.
type RouteResponse struct {
	Count int                     `json:"count"`
	Route []restaurant.Restaurant `json:"route"`
}

// RouteCheckResponse is the GET /v1/tour/route/check/{id} payload.
type RouteCheckResponse struct {
	RestaurantID int  `json:"restaurant_id"`
	InRoute      bool `json:"in_route"`
}
