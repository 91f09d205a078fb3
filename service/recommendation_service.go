package services

import (
	"sort"

	"compass-server/dao/catalog"
	"compass-server/logging"
	"compass-server/models"
	"compass-server/models/restaurant"

	"github.com/rs/zerolog"
)

// A dietary stage or vibe stage is skipped when it would leave fewer than
// this many survivors.
const MIN_STAGE_SURVIVORS = 3

// Recommendation list bounds: up to 5 results, with 3 as the best-effort
// floor for the slice size. Fewer than 3 true survivors are returned as-is.
const (
	MAX_RECOMMENDATIONS = 5
	MIN_RECOMMENDATIONS = 3
)

// RecommendationService runs the survey preference filter chain: dietary,
// craving, vibe, then spice, each with its own fallback policy, followed by a
// terminal top-rated fallback when everything was eliminated.
type RecommendationService struct {
	catalogDao *catalog.CatalogDAO
	logger     zerolog.Logger
}

func NewRecommendationService(catalogDao *catalog.CatalogDAO) *RecommendationService {
	return &RecommendationService{
		catalogDao: catalogDao,
		logger:     logging.ComponentLogger("recommendations"),
	}
}

// Recommend returns the top venues for the given preferences plus the size of
// the filtered pool the slice was taken from.
func (s *RecommendationService) Recommend(prefs models.SurveyPreferences) ([]restaurant.Restaurant, int) {
	all := s.catalogDao.All()
	filtered := append([]restaurant.Restaurant{}, all...)

	// Dietary: the strictest stage; skipped entirely when it would
	// over-restrict below the survivor minimum.
	if hasActiveDietary(prefs.Dietary) {
		dietaryFiltered := filterByDietary(filtered, prefs.Dietary)
		if len(dietaryFiltered) >= MIN_STAGE_SURVIVORS {
			filtered = dietaryFiltered
		} else {
			s.logger.Warn().Int("results", len(dietaryFiltered)).
				Msg("dietary filter too strict, keeping all")
		}
	}

	// Cravings: always applied unless it empties the set.
	if len(prefs.Cravings) > 0 {
		cravingFiltered := filterByCravings(filtered, prefs.Cravings)
		if len(cravingFiltered) > 0 {
			filtered = cravingFiltered
		}
	}

	// Vibe: same minimum-survivor fallback as dietary.
	if prefs.Vibe != "" {
		vibeFiltered := filterByVibe(filtered, prefs.Vibe)
		if len(vibeFiltered) >= MIN_STAGE_SURVIVORS {
			filtered = vibeFiltered
		}
	}

	// Spice: reorders for bring-heat, excludes for no-spice (with
	// fallback-to-all), no-op for medium.
	if prefs.Spice != "" {
		filtered = filterBySpice(filtered, prefs.Spice)
	}

	// Terminal fallback: an empty survivor set yields the overall top rated.
	if len(filtered) == 0 {
		s.logger.Warn().Msg("no restaurants match filters, returning top rated")
		filtered = append([]restaurant.Restaurant{}, all...)
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
		if len(filtered) > MAX_RECOMMENDATIONS {
			filtered = filtered[:MAX_RECOMMENDATIONS]
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})

	topCount := len(filtered)
	if topCount < MIN_RECOMMENDATIONS {
		// best-effort floor: return everything there is
	} else if topCount > MAX_RECOMMENDATIONS {
		topCount = MAX_RECOMMENDATIONS
	}

	return filtered[:topCount], len(filtered)
}

func hasActiveDietary(dietary []string) bool {
	if len(dietary) == 0 {
		return false
	}
	for _, d := range dietary {
		if d != models.DietaryNone {
			return true
		}
	}
	return false
}

func hasRestriction(dietary []string, restriction string) bool {
	for _, d := range dietary {
		if d == restriction {
			return true
		}
	}
	return false
}

func filterByDietary(restaurants []restaurant.Restaurant, dietary []string) []restaurant.Restaurant {
	filtered := []restaurant.Restaurant{}

	for _, r := range restaurants {
		exclude := false
		attrs := r.Attributes

		if hasRestriction(dietary, models.DietaryVegetarian) {
			// Explicit flags win; otherwise a meat marker excludes
			if !attrs.VegetarianFlag && !attrs.VeganFlag && attrs.HasMeat {
				exclude = true
			}
		}
		if hasRestriction(dietary, models.DietaryVegan) {
			if !attrs.VeganFlag {
				exclude = true
			}
		}
		if hasRestriction(dietary, models.DietaryNoPork) {
			if attrs.HasPork {
				exclude = true
			}
		}
		if hasRestriction(dietary, models.DietaryNoSeafood) {
			if !attrs.NoSeafoodFlag && attrs.HasSeafood {
				exclude = true
			}
		}
		if hasRestriction(dietary, models.DietaryNoPeanuts) {
			if attrs.PeanutRisk {
				exclude = true
			}
		}

		if !exclude {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func filterByCravings(restaurants []restaurant.Restaurant, cravings []string) []restaurant.Restaurant {
	filtered := []restaurant.Restaurant{}
	for _, r := range restaurants {
		for _, craving := range cravings {
			if r.Attributes.SatisfiesCraving(craving) {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}

func filterByVibe(restaurants []restaurant.Restaurant, vibe string) []restaurant.Restaurant {
	filtered := []restaurant.Restaurant{}
	for _, r := range restaurants {
		include := false
		switch vibe {
		case models.VibeStreetFood:
			include = r.AveragePrice < 100000 || r.Attributes.StreetFoodDish
		case models.VibeCasualDining:
			include = r.AveragePrice >= 80000 && r.AveragePrice <= 400000
		case models.VibeFineDining:
			include = r.AveragePrice >= 400000
		}
		if include {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func filterBySpice(restaurants []restaurant.Restaurant, spice string) []restaurant.Restaurant {
	switch spice {
	case models.SpiceNone:
		filtered := []restaurant.Restaurant{}
		for _, r := range restaurants {
			if !r.Attributes.Spicy {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return restaurants
		}
		return filtered

	case models.SpiceHeat:
		// Stable partition: spicy venues first, then the rest
		spicy := []restaurant.Restaurant{}
		others := []restaurant.Restaurant{}
		for _, r := range restaurants {
			if r.Attributes.Spicy {
				spicy = append(spicy, r)
			} else {
				others = append(others, r)
			}
		}
		return append(spicy, others...)
	}

	// medium-spice is a no-op
	return restaurants
}
