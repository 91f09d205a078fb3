package models

import "compass-server/models/restaurant"

// Dietary restriction tags accepted by the recommendation flow. "none" is a
// sentinel meaning no restriction.
const (
	DietaryNone       = "none"
	DietaryVegetarian = "vegetarian"
	DietaryVegan      = "vegan"
	DietaryNoPork     = "no-pork"
	DietaryNoSeafood  = "no-seafood"
	DietaryNoPeanuts  = "no-peanuts"
)

// Vibe tiers, inferred mainly from price.
const (
	VibeStreetFood   = "street-food"
	VibeCasualDining = "casual-dining"
	VibeFineDining   = "fine-dining"
)

// Spice tolerance levels.
const (
	SpiceNone   = "no-spice"
	SpiceMedium = "medium-spice"
	SpiceHeat   = "bring-heat"
)

// SurveyPreferences is the per-request value object for the recommendation
// flow. Cravings is required non-empty; the other fields may be empty.
type SurveyPreferences struct {
	Dietary  []string `json:"dietary"`
	Vibe     string   `json:"vibe"`
	Spice    string   `json:"spice"`
	Cravings []string `json:"cravings"`
}

// RecommendationResponse is the POST /v1/recommendations payload.
type RecommendationResponse struct {
	Count         int                     `json:"count"`
	TotalFiltered int                     `json:"totalFiltered"`
	Restaurants   []restaurant.Restaurant `json:"restaurants"`
	Preferences   SurveyPreferences       `json:"preferences"`
}
