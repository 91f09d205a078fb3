package catalog

import (
	"compass-server/logging"
	"compass-server/models/restaurant"
	"compass-server/util"
)

// CatalogDAO holds the in-memory restaurant catalog. It is loaded once at
// startup and read-only afterwards, so concurrent reads need no locking.
type CatalogDAO struct {
	restaurants []restaurant.Restaurant
	byID        map[int]int // id -> index into restaurants
}

// NewCatalogDAO builds a catalog from an already-classified restaurant list.
func NewCatalogDAO(restaurants []restaurant.Restaurant) *CatalogDAO {
	byID := make(map[int]int, len(restaurants))
	for i := range restaurants {
		restaurants[i].Attributes = classify(&restaurants[i])
		byID[restaurants[i].ID] = i
	}
	return &CatalogDAO{
		restaurants: restaurants,
		byID:        byID,
	}
}

// LoadCatalog reads the catalog from JSON on disk. Any malformed or
// incomplete record fails the whole load closed: an empty catalog is
// returned and the process keeps serving (degraded).
func LoadCatalog(filePath string) *CatalogDAO {
	logger := logging.ComponentLogger("catalog")

	restaurants, err := util.ReadRestaurantsFromJSON(filePath)
	if err != nil {
		logger.Warn().Err(err).Str("path", filePath).
			Msg("catalog load failed, starting with an empty catalog")
		return NewCatalogDAO(nil)
	}

	dao := NewCatalogDAO(restaurants)
	logger.Info().Int("restaurants", dao.Count()).Msg("catalog loaded")
	return dao
}

// All returns the catalog in load order. Callers must not mutate the
// returned records.
func (dao *CatalogDAO) All() []restaurant.Restaurant {
	return dao.restaurants
}

// GetByID looks a venue up by its identifier.
func (dao *CatalogDAO) GetByID(id int) (restaurant.Restaurant, bool) {
	i, ok := dao.byID[id]
	if !ok {
		return restaurant.Restaurant{}, false
	}
	return dao.restaurants[i], true
}

// Count returns the number of venues in the catalog.
func (dao *CatalogDAO) Count() int {
	return len(dao.restaurants)
}
