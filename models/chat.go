package models

// ChatRequest is the POST /v1/chat JSON body.
type ChatRequest struct {
	Message string              `json:"message"`
	History []map[string]string `json:"history"`
}

// ChatResponse is the chatbot reply. Restaurants carries the names of any
// venues the answer refers to, so the client can link them.
type ChatResponse struct {
	Response    string   `json:"response"`
	Restaurants []string `json:"restaurants"`
	Source      string   `json:"source"`
	Confidence  float64  `json:"confidence,omitempty"`
}

// ChatStatsResponse is the GET /v1/chat/stats payload.
type ChatStatsResponse struct {
	OllamaAvailable   bool   `json:"ollama_available"`
	OllamaModel       string `json:"ollama_model,omitempty"`
	CacheSize         int    `json:"cache_size"`
	RestaurantsLoaded int    `json:"restaurants_loaded"`
	DishesLoaded      int    `json:"dishes_loaded"`
	RegionsLoaded     int    `json:"regions_loaded"`
	ChatDataLoaded    int    `json:"chat_data_loaded"`
}

// ChatCacheEntry is one cached chatbot answer, keyed by the normalized-query
// fingerprint. Timestamp is unix seconds of the original computation.
type ChatCacheEntry struct {
	Response    string   `json:"response"`
	Restaurants []string `json:"restaurants"`
	Source      string   `json:"source"`
	Timestamp   int64    `json:"timestamp"`
}

// Dish is an entry of the auxiliary dishes dataset.
type Dish struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Flavors     []string `json:"flavors"`
	History     string   `json:"history"`
}

// DishesData is the top-level shape of dishes.json.
type DishesData struct {
	Dishes map[string]Dish `json:"dishes"`
}

// Region is an entry of the auxiliary regions dataset.
type Region struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameEn      string   `json:"nameEn"`
	Specialties []string `json:"specialties"`
}

// RegionsData is the top-level shape of regions.json.
type RegionsData struct {
	Regions []Region `json:"regions"`
}

// ChatEntry is a canned keyword-matched answer from data_chat.json.
type ChatEntry struct {
	Keywords  []string `json:"keywords"`
	Responses []string `json:"responses"`
}
