package handlers

import (
	"net/http"

	"compass-server/models"
	services "compass-server/service"
)

type TourHandler struct {
	tourSearchService *services.TourSearchService
}

func NewTourHandler(tourSearchService *services.TourSearchService) *TourHandler {
	return &TourHandler{tourSearchService: tourSearchService}
}

// Search handles POST /v1/tour/search.
func (h *TourHandler) Search(w http.ResponseWriter, r *http.Request) {
	var query models.TourSearchQuery
	if !decodeBody(w, r, &query) {
		return
	}
	if query.SearchBy == "" {
		query.SearchBy = models.TourSearchAll
	}

	results := h.tourSearchService.Search(query)

	writeJSON(w, http.StatusOK, models.TourSearchResponse{
		Query:    query.QueryText,
		SearchBy: query.SearchBy,
		Count:    len(results),
		Results:  results,
	})
}

// Restaurants handles GET /v1/tour/restaurants.
func (h *TourHandler) Restaurants(w http.ResponseWriter, r *http.Request) {
	all := h.tourSearchService.AllRestaurants()
	writeJSON(w, http.StatusOK, models.TourRestaurantsResponse{
		Count:       len(all),
		Restaurants: all,
	})
}
