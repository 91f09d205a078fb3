package catalog

import (
	"strings"

	"compass-server/models/restaurant"
)

// Keyword vocabulary for load-time venue classification. Matching is
// substring-based over a lowercase join of the relevant list fields, which is
// what the ingestion pipeline's tag vocabulary was written against.
var (
	meatKeywords = []string{"beef", "pork", "chicken", "duck", "meat", "thịt", "bò", "gà", "heo"}

	porkKeywords = []string{"pork", "heo", "sườn", "bì"}

	seafoodKeywords = []string{"seafood", "shrimp", "tôm", "cá", "fish", "crab", "cua", "mực", "squid", "hải sản"}

	peanutRiskKeywords = []string{"gỏi cuốn", "spring roll"}

	spicyKeywords = []string{"bún bò huế", "spicy"}

	streetFoodKeywords = []string{"street", "phở", "bánh mì", "cơm tấm"}

	cravingKeywords = map[string][]string{
		restaurant.CravingSoup:    {"phở", "bún bò", "hủ tiếu", "soup", "noodle"},
		restaurant.CravingDry:     {"bánh mì", "sandwich"},
		restaurant.CravingRice:    {"cơm tấm", "cơm", "rice"},
		restaurant.CravingCrispy:  {"bánh xèo", "fried", "crispy", "spring roll", "gỏi cuốn", "chả giò"},
		restaurant.CravingDessert: {"chè", "dessert", "sweet"},
	}
)

// Special flags that are authoritative when present on a venue.
const (
	FlagVegetarian = "Vegetarian"
	FlagVegan      = "Vegan options"
	FlagNoSeafood  = "No Seafood"
)

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func joinLower(parts []string) string {
	return strings.ToLower(strings.Join(parts, " "))
}

// classify derives the structured attribute set for a venue. Dietary and
// spice markers scan tags only; pork, seafood and craving markers scan tags
// plus cuisines, matching the vocabulary each marker was tuned on.
func classify(r *restaurant.Restaurant) restaurant.Attributes {
	tagsText := joinLower(r.Tags)
	tagsCuisinesText := joinLower(append(append([]string{}, r.Tags...), r.Cuisines...))

	cravings := make(map[string]bool, len(cravingKeywords))
	for craving, keywords := range cravingKeywords {
		if containsAny(tagsCuisinesText, keywords) {
			cravings[craving] = true
		}
	}

	return restaurant.Attributes{
		HasMeat:    containsAny(tagsText, meatKeywords),
		HasPork:    containsAny(tagsCuisinesText, porkKeywords),
		HasSeafood: containsAny(tagsCuisinesText, seafoodKeywords),
		PeanutRisk: containsAny(tagsText, peanutRiskKeywords),

		VegetarianFlag: r.HasSpecialFlag(FlagVegetarian),
		VeganFlag:      r.HasSpecialFlag(FlagVegan),
		NoSeafoodFlag:  r.HasSpecialFlag(FlagNoSeafood),

		Spicy:          containsAny(tagsText, spicyKeywords),
		StreetFoodDish: containsAny(tagsText, streetFoodKeywords),

		Cravings: cravings,
	}
}
