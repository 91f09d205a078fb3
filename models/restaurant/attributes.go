package restaurant

// Craving categories a venue can satisfy.
const (
	CravingSoup    = "soup"
	CravingDry     = "dry"
	CravingRice    = "rice"
	CravingCrispy  = "crispy"
	CravingDessert = "dessert"
)

// Attributes is the structured classification of a venue, computed once at
// catalog load from its tags, cuisines and special flags. Filter stages test
// these booleans instead of re-scanning the raw strings per request.
type Attributes struct {
	// Dietary markers
	HasMeat    bool
	HasPork    bool
	HasSeafood bool
	PeanutRisk bool

	// Explicit special-flag opt-ins, authoritative when present
	VegetarianFlag bool
	VeganFlag      bool
	NoSeafoodFlag  bool

	// Spice and vibe markers
	Spicy          bool
	StreetFoodDish bool

	// Cravings the venue can satisfy, keyed by the Craving* constants
	Cravings map[string]bool
}

// SatisfiesCraving reports whether the venue covers the given craving tag.
func (a Attributes) SatisfiesCraving(craving string) bool {
	return a.Cravings[craving]
}
