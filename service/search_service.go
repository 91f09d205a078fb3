package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"compass-server/dao/catalog"
	"compass-server/models"
	"compass-server/models/restaurant"
)

// SearchService filters and ranks the catalog for a search query. All active
// predicates must pass (AND across dimensions); within a list-valued
// dimension any one value matching is enough. Empty parameters are no-op
// filters.
type SearchService struct {
	catalogDao      *catalog.CatalogDAO
	locationService *LocationService
	hoursService    *HoursService
}

func NewSearchService(
	catalogDao *catalog.CatalogDAO,
	locationService *LocationService,
	hoursService *HoursService) *SearchService {

	return &SearchService{
		catalogDao:      catalogDao,
		locationService: locationService,
		hoursService:    hoursService,
	}
}

// Search runs a single pass over the catalog, keeps the venues passing every
// active predicate, and returns them ordered by the requested sort key.
// Result records carry the freshly computed distance and open-status overlay;
// the canonical catalog records are never mutated.
func (s *SearchService) Search(query models.SearchQuery) []models.SearchResult {
	results := []models.SearchResult{}

	for _, r := range s.catalogDao.All() {
		distance := s.locationService.CalculateDistance(query.UserLocation, r.Location)
		if distance > query.RadiusKm {
			continue
		}
		if !isTextMatch(&r, query.QueryText) {
			continue
		}
		if !isPriceMatch(&r, query.PriceRange) {
			continue
		}
		if !isCuisineMatch(&r, query.Cuisines) {
			continue
		}
		if !isSpecialFlagMatch(&r, query.SpecialFlags) {
			continue
		}
		isOpen, openStatus := s.hoursService.IsOpen(r.OpenHours)
		if query.OpenNow && !isOpen {
			continue
		}

		result := models.SearchResult{
			Restaurant:           r,
			CalculatedDistanceKm: distance,
			OpenStatusText:       openStatus,
		}
		result.DistanceText = fmt.Sprintf("%.1f km", distance)
		results = append(results, result)
	}

	// Stable sorts keep catalog order for ties; ordering uses the exact
	// distance, rounding happens only at serialization below.
	switch query.SortBy {
	case models.SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CalculatedDistanceKm < results[j].CalculatedDistanceKm
		})
	}

	for i := range results {
		results[i].CalculatedDistanceKm = math.Round(results[i].CalculatedDistanceKm*10) / 10
	}

	return results
}

// isTextMatch is a case-insensitive substring test against the name, any tag
// or any cuisine.
func isTextMatch(r *restaurant.Restaurant, queryText string) bool {
	if queryText == "" {
		return true
	}
	lowerQuery := strings.ToLower(queryText)
	if strings.Contains(strings.ToLower(r.Name), lowerQuery) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	for _, cuisine := range r.Cuisines {
		if strings.Contains(strings.ToLower(cuisine), lowerQuery) {
			return true
		}
	}
	return false
}

func isPriceMatch(r *restaurant.Restaurant, priceRange string) bool {
	if priceRange == "" {
		return true
	}
	price := r.AveragePrice
	switch priceRange {
	case models.PriceRangeLow:
		return price < 25000
	case models.PriceRangeMid:
		return price >= 25000 && price <= 50000
	case models.PriceRangeHigh:
		return price > 50000
	}
	return true
}

func isCuisineMatch(r *restaurant.Restaurant, cuisines []string) bool {
	if len(cuisines) == 0 {
		return true
	}
	for _, want := range cuisines {
		for _, have := range r.Cuisines {
			if want == have {
				return true
			}
		}
	}
	return false
}

func isSpecialFlagMatch(r *restaurant.Restaurant, specialFlags []string) bool {
	if len(specialFlags) == 0 {
		return true
	}
	for _, want := range specialFlags {
		if r.HasSpecialFlag(want) {
			return true
		}
	}
	return false
}
