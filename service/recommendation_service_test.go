package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"compass-server/dao/catalog"
	"compass-server/models"
	"compass-server/models/restaurant"
)

func restaurantIDs(restaurants []restaurant.Restaurant) []int {
	ids := make([]int, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRecommendationService_VegetarianExcludesMeatVenues(t *testing.T) {
	// Setup
	service := NewRecommendationService(newTestCatalog())
	prefs := models.SurveyPreferences{
		Dietary:  []string{models.DietaryVegetarian},
		Cravings: []string{restaurant.CravingDessert},
	}

	// Act
	recommended, totalFiltered := service.Recommend(prefs)

	// Assert: dietary leaves 3, 4 and 5; the dessert craving then keeps only 5
	assert.Equal(t, []int{5}, restaurantIDs(recommended))
	assert.Equal(t, 1, totalFiltered)
}

func TestRecommendationService_OverStrictDietaryIsSkipped(t *testing.T) {
	// Setup: only one venue carries the vegan flag, below the survivor
	// minimum, so the dietary stage must be skipped entirely
	service := NewRecommendationService(newTestCatalog())
	prefs := models.SurveyPreferences{
		Dietary:  []string{models.DietaryVegan},
		Cravings: []string{restaurant.CravingSoup},
	}

	// Act
	recommended, totalFiltered := service.Recommend(prefs)

	// Assert: the soup venues survive, rating descending
	assert.Equal(t, []int{2, 1}, restaurantIDs(recommended))
	assert.Equal(t, 2, totalFiltered)
}

func TestRecommendationService_DietaryNoneIsInactive(t *testing.T) {
	// Setup
	service := NewRecommendationService(newTestCatalog())
	prefs := models.SurveyPreferences{
		Dietary:  []string{models.DietaryNone},
		Cravings: []string{restaurant.CravingDry},
	}

	// Act
	recommended, _ := service.Recommend(prefs)

	// Assert: "none" activates nothing, so only the craving applies
	assert.Equal(t, []int{6}, restaurantIDs(recommended))
}

func TestRecommendationService_NoSpiceExcludesSpicyVenues(t *testing.T) {
	// Setup
	service := NewRecommendationService(newTestCatalog())
	prefs := models.SurveyPreferences{
		Cravings: []string{restaurant.CravingSoup},
		Spice:    models.SpiceNone,
	}

	// Act
	recommended, _ := service.Recommend(prefs)

	// Assert: venue 2 is the spicy one
	assert.Equal(t, []int{1}, restaurantIDs(recommended))
}

func TestRecommendationService_StreetFoodVibe(t *testing.T) {
	// Setup
	service := NewRecommendationService(newTestCatalog())
	prefs := models.SurveyPreferences{
		Cravings: []string{
			restaurant.CravingSoup,
			restaurant.CravingDry,
			restaurant.CravingRice,
			restaurant.CravingCrispy,
			restaurant.CravingDessert,
		},
		Vibe: models.VibeStreetFood,
	}

	// Act
	recommended, totalFiltered := service.Recommend(prefs)

	// Assert: cravings keep 1, 2, 5 and 6; all pass the street-food vibe;
	// final order is rating descending
	assert.Equal(t, []int{2, 6, 1, 5}, restaurantIDs(recommended))
	assert.Equal(t, 4, totalFiltered)
}

func TestRecommendationService_UnsatisfiableCravingIsSkipped(t *testing.T) {
	// Setup: a catalog where nothing satisfies the craving
	dao := catalog.NewCatalogDAO([]restaurant.Restaurant{
		{ID: 1, Name: "A", Rating: 4.0, AveragePrice: 50000, Tags: []string{"seafood"}},
		{ID: 2, Name: "B", Rating: 4.5, AveragePrice: 60000, Tags: []string{"salad"}},
	})
	service := NewRecommendationService(dao)
	prefs := models.SurveyPreferences{
		Cravings: []string{restaurant.CravingDessert},
	}

	// Act
	recommended, totalFiltered := service.Recommend(prefs)

	// Assert: the craving stage empties the pool, so it is skipped and the
	// full set comes back rating descending
	assert.Equal(t, []int{2, 1}, restaurantIDs(recommended))
	assert.Equal(t, 2, totalFiltered)
}

func TestRecommendationService_EmptyCatalogYieldsNoResults(t *testing.T) {
	// Setup: every stage has its own fallback, so an empty survivor pool only
	// occurs when the catalog itself is empty; the terminal top-rated
	// fallback must then come back empty rather than panic
	service := NewRecommendationService(catalog.NewCatalogDAO(nil))
	prefs := models.SurveyPreferences{
		Dietary:  []string{models.DietaryVegan},
		Cravings: []string{restaurant.CravingSoup},
		Vibe:     models.VibeFineDining,
		Spice:    models.SpiceHeat,
	}

	// Act
	recommended, totalFiltered := service.Recommend(prefs)

	// Assert
	assert.Empty(t, recommended)
	assert.Equal(t, 0, totalFiltered)
}

func TestRecommendationService_CapsAtFiveResults(t *testing.T) {
	// Setup
	service := NewRecommendationService(newTestCatalog())
	prefs := models.SurveyPreferences{
		Cravings: []string{
			restaurant.CravingSoup,
			restaurant.CravingDry,
			restaurant.CravingRice,
			restaurant.CravingCrispy,
			restaurant.CravingDessert,
		},
		Spice: models.SpiceMedium,
	}

	// Act
	recommended, _ := service.Recommend(prefs)

	// Assert
	assert.LessOrEqual(t, len(recommended), MAX_RECOMMENDATIONS)
}
