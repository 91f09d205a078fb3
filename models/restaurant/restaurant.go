package restaurant

import "fmt"

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Restaurant is a catalog entry. The canonical record is immutable after
// load; distance_text and the per-request overlays are only ever set on
// copies at serialization time.
type Restaurant struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Rating       float64     `json:"rating"`
	AveragePrice float64     `json:"averagePrice"`
	Cuisines     []string    `json:"cuisines"`
	Tags         []string    `json:"tags"`
	OpenHours    string      `json:"openHours"`
	SpecialFlags []string    `json:"specialFlags"`
	Location     Coordinates `json:"location"`
	ImageURL     string      `json:"image_url"`
	DistanceText string      `json:"distance_text"`
	PriceText    string      `json:"price_text"`
	Address      string      `json:"address"`

	// Attributes are derived once at catalog load and never serialized.
	Attributes Attributes `json:"-"`
}

func (r *Restaurant) ToString() string {
	return fmt.Sprintf("Restaurant(id=%d, name=%s, rating=%.1f, lat=%f, lon=%f)",
		r.ID, r.Name, r.Rating, r.Location.Latitude, r.Location.Longitude)
}

// HasSpecialFlag reports whether the given flag is present verbatim.
func (r *Restaurant) HasSpecialFlag(flag string) bool {
	for _, f := range r.SpecialFlags {
		if f == flag {
			return true
		}
	}
	return false
}
