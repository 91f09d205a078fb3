package services

import (
	"math"

	"compass-server/models/restaurant"
)

const EARTH_RADIUS_KM = 6371.0

// LocationService computes great-circle distances between coordinates.
type LocationService struct{}

func NewLocationService() *LocationService {
	return &LocationService{}
}

func (s *LocationService) convertToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// CalculateDistance returns the haversine distance in kilometers between two
// points on an idealized sphere. Inputs are decimal degrees and are not range
// checked; out-of-range coordinates produce a mathematically valid but
// meaningless result.
func (s *LocationService) CalculateDistance(userLocation, restaurantLocation restaurant.Coordinates) float64 {
	lat1Rad := s.convertToRadians(userLocation.Latitude)
	lon1Rad := s.convertToRadians(userLocation.Longitude)
	lat2Rad := s.convertToRadians(restaurantLocation.Latitude)
	lon2Rad := s.convertToRadians(restaurantLocation.Longitude)

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EARTH_RADIUS_KM * c
}
