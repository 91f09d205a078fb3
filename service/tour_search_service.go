package services

import (
	"strings"

	"compass-server/dao/catalog"
	"compass-server/models"
	"compass-server/models/restaurant"
)

// TourSearchService is the text-only search behind the tour designer: a
// case-insensitive substring match over name and/or tags, annotating each hit
// with the field it matched in.
type TourSearchService struct {
	catalogDao *catalog.CatalogDAO
}

func NewTourSearchService(catalogDao *catalog.CatalogDAO) *TourSearchService {
	return &TourSearchService{catalogDao: catalogDao}
}

// Search filters the catalog by the query text. An empty query matches every
// venue.
func (s *TourSearchService) Search(query models.TourSearchQuery) []models.TourSearchResult {
	results := []models.TourSearchResult{}
	for _, r := range s.catalogDao.All() {
		matches, matchField := matchesTourQuery(&r, query)
		if matches {
			results = append(results, models.TourSearchResult{
				Restaurant: r,
				MatchField: matchField,
			})
		}
	}
	return results
}

// AllRestaurants exposes the whole catalog for the tour designer grid.
func (s *TourSearchService) AllRestaurants() []restaurant.Restaurant {
	return s.catalogDao.All()
}

func matchesTourQuery(r *restaurant.Restaurant, query models.TourSearchQuery) (bool, string) {
	if query.QueryText == "" {
		return true, ""
	}
	lowerQuery := strings.ToLower(query.QueryText)

	inName := strings.Contains(strings.ToLower(r.Name), lowerQuery)
	inTags := false
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			inTags = true
			break
		}
	}

	switch query.SearchBy {
	case models.TourSearchByName:
		if inName {
			return true, "name"
		}
		return false, ""
	case models.TourSearchByTags:
		if inTags {
			return true, "tags"
		}
		return false, ""
	default:
		// "all" and anything unrecognized search every field
		if inName {
			return true, "name"
		}
		if inTags {
			return true, "tags"
		}
		return false, ""
	}
}
