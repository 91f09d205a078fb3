package services

import (
	"testing"
	"time"

	"compass-server/dao/catalog"
	"compass-server/models"
	"compass-server/models/restaurant"
)

// newTestCatalog builds a small classified catalog around the default
// downtown point. Venue 1 sits exactly on it; the others are spread north at
// roughly 0.5, 1, 2, 4 and 5 km.
func newTestCatalog() *catalog.CatalogDAO {
	return catalog.NewCatalogDAO([]restaurant.Restaurant{
		{
			ID: 1, Name: "Phở Bình", Rating: 4.2, AveragePrice: 45000,
			Cuisines:  []string{"Vietnamese"},
			Tags:      []string{"phở", "noodle soup", "beef"},
			OpenHours: "06:00 - 22:00",
			Location:  restaurant.Coordinates{Latitude: 10.7725, Longitude: 106.6980},
			PriceText: "45,000 VND",
		},
		{
			ID: 2, Name: "Bún Bò Huế Cô Ba", Rating: 4.7, AveragePrice: 55000,
			Cuisines:  []string{"Vietnamese"},
			Tags:      []string{"bún bò huế", "spicy", "beef"},
			OpenHours: "22:00 - 06:00",
			Location:  restaurant.Coordinates{Latitude: 10.7815, Longitude: 106.6980},
			PriceText: "55,000 VND",
		},
		{
			ID: 3, Name: "Green Garden", Rating: 4.5, AveragePrice: 120000,
			Cuisines:     []string{"Vietnamese", "Vegetarian"},
			Tags:         []string{"vegetarian", "salad", "tofu"},
			SpecialFlags: []string{"Vegetarian", "Vegan options"},
			OpenHours:    "09:00 - 22:00",
			Location:     restaurant.Coordinates{Latitude: 10.7905, Longitude: 106.6980},
			PriceText:    "120,000 VND",
		},
		{
			ID: 4, Name: "Ocean Crab House", Rating: 4.0, AveragePrice: 300000,
			Cuisines:  []string{"Seafood"},
			Tags:      []string{"seafood", "crab"},
			OpenHours: "10:00 - 23:00",
			Location:  restaurant.Coordinates{Latitude: 10.8085, Longitude: 106.6980},
			PriceText: "300,000 VND",
		},
		{
			ID: 5, Name: "Chè Ngon", Rating: 3.9, AveragePrice: 18000,
			Cuisines:  []string{"Vietnamese", "Dessert"},
			Tags:      []string{"chè", "dessert", "sweet"},
			OpenHours: "08:00 - 21:00",
			Location:  restaurant.Coordinates{Latitude: 10.8175, Longitude: 106.6980},
			PriceText: "18,000 VND",
		},
		{
			ID: 6, Name: "Bánh Mì 37", Rating: 4.4, AveragePrice: 25000,
			Cuisines:  []string{"Vietnamese", "Street Food"},
			Tags:      []string{"bánh mì", "pork"},
			OpenHours: "06:00 - 20:00",
			Location:  restaurant.Coordinates{Latitude: 10.7770, Longitude: 106.6980},
			PriceText: "25,000 VND",
		},
	})
}

// noonClock pins the hours evaluation to 12:00.
func noonClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestSearchService() *SearchService {
	return NewSearchService(newTestCatalog(), NewLocationService(), NewHoursServiceAt(noonClock))
}

func defaultQuery() models.SearchQuery {
	return models.SearchQuery{
		UserLocation: restaurant.Coordinates{Latitude: 10.7725, Longitude: 106.6980},
		RadiusKm:     10.0,
		SortBy:       models.SortByDistance,
	}
}

func resultIDs(results []models.SearchResult) []int {
	ids := make([]int, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSearchService_EmptyQueryReturnsAllByDistance(t *testing.T) {
	// Setup
	service := newTestSearchService()

	// Act
	results := service.Search(defaultQuery())

	// Assert
	expected := []int{1, 6, 2, 3, 4, 5}
	got := resultIDs(results)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Position %d: expected id %d, got %d", i, expected[i], got[i])
		}
	}
	if results[0].CalculatedDistanceKm != 0 {
		t.Errorf("Expected zero distance for on-point venue, got %v", results[0].CalculatedDistanceKm)
	}
	if results[0].DistanceText != "0.0 km" {
		t.Errorf("Expected distance text '0.0 km', got %q", results[0].DistanceText)
	}
}

func TestSearchService_TextMatchesNameTagsAndCuisines(t *testing.T) {
	// Setup
	service := newTestSearchService()

	tests := []struct {
		name      string
		queryText string
		wantIDs   map[int]bool
	}{
		{"tag match", "phở", map[int]bool{1: true}},
		{"name match", "green garden", map[int]bool{3: true}},
		{"cuisine match", "dessert", map[int]bool{5: true}},
		{"no match", "pizza", map[int]bool{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query := defaultQuery()
			query.QueryText = test.queryText

			results := service.Search(query)

			if len(results) != len(test.wantIDs) {
				t.Fatalf("Expected %d results, got %d", len(test.wantIDs), len(results))
			}
			for _, r := range results {
				if !test.wantIDs[r.ID] {
					t.Errorf("Unexpected venue id %d", r.ID)
				}
			}
		})
	}
}

func TestSearchService_PriceBands(t *testing.T) {
	// Setup
	service := newTestSearchService()

	tests := []struct {
		priceRange string
		wantIDs    map[int]bool
	}{
		{models.PriceRangeLow, map[int]bool{5: true}},
		// 25000 sits exactly on the low/mid boundary and belongs to mid
		{models.PriceRangeMid, map[int]bool{1: true, 6: true}},
		{models.PriceRangeHigh, map[int]bool{2: true, 3: true, 4: true}},
	}

	for _, test := range tests {
		t.Run(test.priceRange, func(t *testing.T) {
			query := defaultQuery()
			query.PriceRange = test.priceRange

			results := service.Search(query)

			if len(results) != len(test.wantIDs) {
				t.Fatalf("Expected %d results, got %d", len(test.wantIDs), len(results))
			}
			for _, r := range results {
				if !test.wantIDs[r.ID] {
					t.Errorf("Unexpected venue id %d in band %s", r.ID, test.priceRange)
				}
			}
		})
	}
}

func TestSearchService_PriceBandBoundaries(t *testing.T) {
	// Setup: venues sitting on and around both band thresholds
	center := restaurant.Coordinates{Latitude: 10.7725, Longitude: 106.6980}
	dao := catalog.NewCatalogDAO([]restaurant.Restaurant{
		{ID: 1, Name: "Just Under Low", Rating: 4.0, AveragePrice: 24999, OpenHours: "06:00 - 22:00", Location: center},
		{ID: 2, Name: "Low Mid Boundary", Rating: 4.0, AveragePrice: 25000, OpenHours: "06:00 - 22:00", Location: center},
		{ID: 3, Name: "Mid High Boundary", Rating: 4.0, AveragePrice: 50000, OpenHours: "06:00 - 22:00", Location: center},
		{ID: 4, Name: "Just Over Mid", Rating: 4.0, AveragePrice: 50001, OpenHours: "06:00 - 22:00", Location: center},
	})
	service := NewSearchService(dao, NewLocationService(), NewHoursServiceAt(noonClock))

	tests := []struct {
		priceRange string
		wantIDs    map[int]bool
	}{
		{models.PriceRangeLow, map[int]bool{1: true}},
		// both 25000 and 50000 belong to the mid band
		{models.PriceRangeMid, map[int]bool{2: true, 3: true}},
		{models.PriceRangeHigh, map[int]bool{4: true}},
	}

	for _, test := range tests {
		t.Run(test.priceRange, func(t *testing.T) {
			query := defaultQuery()
			query.PriceRange = test.priceRange

			results := service.Search(query)

			if len(results) != len(test.wantIDs) {
				t.Fatalf("Expected %d results, got %d: %v", len(test.wantIDs), len(results), resultIDs(results))
			}
			for _, r := range results {
				if !test.wantIDs[r.ID] {
					t.Errorf("Unexpected venue id %d in band %s", r.ID, test.priceRange)
				}
			}
		})
	}
}

func TestSearchService_SortByRating(t *testing.T) {
	// Setup
	service := newTestSearchService()
	query := defaultQuery()
	query.SortBy = models.SortByRating

	// Act
	results := service.Search(query)

	// Assert: ordered by rating descending
	expected := []int{2, 3, 6, 1, 4, 5}
	got := resultIDs(results)
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Position %d: expected id %d, got %d", i, expected[i], got[i])
		}
	}
}

func TestSearchService_OpenNowExcludesClosedVenues(t *testing.T) {
	// Setup: at noon the 22:00 - 06:00 venue is closed
	service := newTestSearchService()
	query := defaultQuery()
	query.OpenNow = true

	// Act
	results := service.Search(query)

	// Assert
	for _, r := range results {
		if r.ID == 2 {
			t.Errorf("Expected venue 2 to be filtered out at noon")
		}
		if r.OpenStatusText != OpenStatusOpen {
			t.Errorf("Expected open status %q for venue %d, got %q", OpenStatusOpen, r.ID, r.OpenStatusText)
		}
	}
	if len(results) != 5 {
		t.Errorf("Expected 5 open venues, got %d", len(results))
	}
}

func TestSearchService_RadiusCutsDistantVenues(t *testing.T) {
	// Setup
	service := newTestSearchService()
	query := defaultQuery()
	query.RadiusKm = 1.5

	// Act
	results := service.Search(query)

	// Assert: only the venues within ~1.5 km remain
	expected := []int{1, 6, 2}
	got := resultIDs(results)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d results, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Position %d: expected id %d, got %d", i, expected[i], got[i])
		}
	}
}

func TestSearchService_CuisineAndFlagFilters(t *testing.T) {
	// Setup
	service := newTestSearchService()

	// Act: exact cuisine membership
	query := defaultQuery()
	query.Cuisines = []string{"Seafood"}
	results := service.Search(query)

	// Assert
	if len(results) != 1 || results[0].ID != 4 {
		t.Fatalf("Expected only venue 4 for Seafood cuisine, got %v", resultIDs(results))
	}

	// Act: special flag membership
	query = defaultQuery()
	query.SpecialFlags = []string{"Vegan options"}
	results = service.Search(query)

	// Assert
	if len(results) != 1 || results[0].ID != 3 {
		t.Fatalf("Expected only venue 3 for Vegan options flag, got %v", resultIDs(results))
	}
}
