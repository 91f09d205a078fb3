package util

import (
	"encoding/json"
	"fmt"
	"os"

	"compass-server/models"
	"compass-server/models/restaurant"
)

// restaurantRecord mirrors one element of restaurants.json. Pointer fields
// let the loader detect missing required keys; address is the only optional
// field.
type restaurantRecord struct {
	ID           *int                    `json:"id"`
	Name         *string                 `json:"name"`
	Rating       *float64                `json:"rating"`
	AveragePrice *float64                `json:"averagePrice"`
	Cuisines     *[]string               `json:"cuisines"`
	Tags         *[]string               `json:"tags"`
	OpenHours    *string                 `json:"openHours"`
	SpecialFlags *[]string               `json:"specialFlags"`
	Location     *restaurant.Coordinates `json:"location"`
	ImageURL     *string                 `json:"image_url"`
	DistanceText *string                 `json:"distance_text"`
	PriceText    *string                 `json:"price_text"`
	Address      string                  `json:"address"`
}

func (rec *restaurantRecord) missingKey() string {
	switch {
	case rec.ID == nil:
		return "id"
	case rec.Name == nil:
		return "name"
	case rec.Rating == nil:
		return "rating"
	case rec.AveragePrice == nil:
		return "averagePrice"
	case rec.Cuisines == nil:
		return "cuisines"
	case rec.Tags == nil:
		return "tags"
	case rec.OpenHours == nil:
		return "openHours"
	case rec.SpecialFlags == nil:
		return "specialFlags"
	case rec.Location == nil:
		return "location"
	case rec.ImageURL == nil:
		return "image_url"
	case rec.DistanceText == nil:
		return "distance_text"
	case rec.PriceText == nil:
		return "price_text"
	}
	return ""
}

// ReadRestaurantsFromJSON loads the restaurant catalog from JSON on disk.
// A record missing any required key aborts the whole load.
func ReadRestaurantsFromJSON(filePath string) ([]restaurant.Restaurant, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var records []restaurantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurants: %w", err)
	}

	restaurants := make([]restaurant.Restaurant, 0, len(records))
	for i, rec := range records {
		if key := rec.missingKey(); key != "" {
			return nil, fmt.Errorf("restaurant record %d is missing key %q", i, key)
		}
		restaurants = append(restaurants, restaurant.Restaurant{
			ID:           *rec.ID,
			Name:         *rec.Name,
			Rating:       *rec.Rating,
			AveragePrice: *rec.AveragePrice,
			Cuisines:     *rec.Cuisines,
			Tags:         *rec.Tags,
			OpenHours:    *rec.OpenHours,
			SpecialFlags: *rec.SpecialFlags,
			Location:     *rec.Location,
			ImageURL:     *rec.ImageURL,
			DistanceText: *rec.DistanceText,
			PriceText:    *rec.PriceText,
			Address:      rec.Address,
		})
	}
	return restaurants, nil
}

// ReadDishesFromJSON loads the auxiliary dish dataset.
func ReadDishesFromJSON(filePath string) (*models.DishesData, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var dishes models.DishesData
	if err := json.Unmarshal(data, &dishes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DishesData: %w", err)
	}
	return &dishes, nil
}

// ReadRegionsFromJSON loads the auxiliary region dataset.
func ReadRegionsFromJSON(filePath string) ([]models.Region, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var regions models.RegionsData
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RegionsData: %w", err)
	}
	return regions.Regions, nil
}

// ReadChatDataFromJSON loads the canned keyword-answer dataset.
func ReadChatDataFromJSON(filePath string) (map[string]models.ChatEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var entries map[string]models.ChatEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat data: %w", err)
	}
	return entries, nil
}
