package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"compass-server/api/ollama"
	"compass-server/dao/catalog"
	"compass-server/logging"
	"compass-server/models"
	"compass-server/models/restaurant"
)

const RULE_CONFIDENCE_DIRECT = 0.9
const RULE_CONFIDENCE_FALLBACK = 0.7

const FALLBACK_RESPONSE = "🤔 I'm not sure about that one. Try asking about dishes (phở, bánh mì...), " +
	"restaurants, prices, or regions of Vietnam — or use the search to browse everything!"

// ChatService answers free-text food questions. High-confidence rule hits are
// served directly; everything else goes to the LLM, with the rule engine as a
// degraded fallback when the LLM is down.
type ChatService struct {
	catalogDao *catalog.CatalogDAO
	dishes     map[string]models.Dish
	regions    []models.Region
	chatData   map[string]models.ChatEntry
	ollamaApi  ollama.OllamaAPI
	cache      ChatCache
	logger     zerolog.Logger
}

// NewChatService creates a new instance of ChatService
func NewChatService(
	catalogDao *catalog.CatalogDAO,
	dishes map[string]models.Dish,
	regions []models.Region,
	chatData map[string]models.ChatEntry,
	ollamaApi ollama.OllamaAPI,
	cache ChatCache,
) *ChatService {
	return &ChatService{
		catalogDao: catalogDao,
		dishes:     dishes,
		regions:    regions,
		chatData:   chatData,
		ollamaApi:  ollamaApi,
		cache:      cache,
		logger:     logging.ComponentLogger("chat_service"),
	}
}

// Chat computes the reply for one user message.
func (s *ChatService) Chat(message string) models.ChatResponse {
	fingerprint := queryFingerprint(message)
	if entry, ok := s.cache.Get(fingerprint); ok {
		s.logger.Debug().Str("fingerprint", fingerprint).Msg("chat cache hit")
		return models.ChatResponse{
			Response:    entry.Response,
			Restaurants: entry.Restaurants,
			Source:      entry.Source + "_cached",
		}
	}

	response := s.compute(message)

	if putErr := s.cache.Put(fingerprint, models.ChatCacheEntry{
		Response:    response.Response,
		Restaurants: response.Restaurants,
		Source:      response.Source,
		Timestamp:   time.Now().Unix(),
	}); putErr != nil {
		s.logger.Warn().Err(putErr).Msg("failed to cache chat response")
	}

	return response
}

func (s *ChatService) compute(message string) models.ChatResponse {
	rule := s.tryRuleBased(message)
	if rule != nil && rule.Confidence >= RULE_CONFIDENCE_DIRECT {
		return models.ChatResponse{
			Response:    rule.Response,
			Restaurants: rule.Restaurants,
			Source:      rule.Source,
			Confidence:  rule.Confidence,
		}
	}

	if s.ollamaApi.IsAvailable() {
		generated, err := s.ollamaApi.Generate(s.buildPrompt(message))
		if err != nil {
			s.logger.Warn().Err(err).Msg("ollama generate failed")
		} else if generated.Response != "" {
			return models.ChatResponse{
				Response:    generated.Response,
				Restaurants: []string{},
				Source:      "ollama_ai",
			}
		}
	}

	if rule != nil && rule.Confidence >= RULE_CONFIDENCE_FALLBACK {
		return models.ChatResponse{
			Response:    rule.Response,
			Restaurants: rule.Restaurants,
			Source:      rule.Source + "_fallback",
			Confidence:  rule.Confidence,
		}
	}

	return models.ChatResponse{
		Response:    FALLBACK_RESPONSE,
		Restaurants: []string{},
		Source:      "fallback",
	}
}

// Stats reports chatbot health and dataset sizes.
func (s *ChatService) Stats() models.ChatStatsResponse {
	stats := models.ChatStatsResponse{
		OllamaAvailable:   s.ollamaApi.IsAvailable(),
		CacheSize:         s.cache.Size(),
		RestaurantsLoaded: s.catalogDao.Count(),
		DishesLoaded:      len(s.dishes),
		RegionsLoaded:     len(s.regions),
		ChatDataLoaded:    len(s.chatData),
	}
	if stats.OllamaAvailable {
		stats.OllamaModel = s.ollamaApi.Model()
	}
	return stats
}

// queryFingerprint normalizes a message into its cache key.
func queryFingerprint(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// buildPrompt condenses the loaded datasets into grounding context for the
// model. The catalog summary is capped so the prompt stays inside the model's
// context window.
func (s *ChatService) buildPrompt(message string) string {
	var b strings.Builder

	b.WriteString("You are a friendly food assistant for Ho Chi Minh City, Vietnam. ")
	b.WriteString("Answer briefly and only from the data below. If the data does not cover the question, say so.\n\n")

	all := s.catalogDao.All()
	b.WriteString(fmt.Sprintf("RESTAURANTS (%d total", len(all)))
	if avg := averagePrice(all); avg > 0 {
		b.WriteString(fmt.Sprintf(", average price %s VND", formatPrice(avg)))
	}
	b.WriteString("):\n")
	for i, r := range all {
		if i >= 30 {
			break
		}
		b.WriteString(fmt.Sprintf("- %s | rating %.1f | ~%s VND | %s\n",
			r.Name, r.Rating, formatPrice(r.AveragePrice), strings.Join(r.Cuisines, "/")))
	}

	b.WriteString("\nDISHES:\n")
	for i, dishID := range sortedKeys(s.dishes) {
		if i >= 15 {
			break
		}
		dish := s.dishes[dishID]
		b.WriteString(fmt.Sprintf("- %s: %s\n", dish.Name, truncate(dish.Description, 120)))
	}

	b.WriteString("\nREGIONS:\n")
	for i, region := range s.regions {
		if i >= 5 {
			break
		}
		name := region.NameEn
		if name == "" {
			name = region.Name
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", name, strings.Join(region.Specialties, ", ")))
	}

	b.WriteString("\nQuestion: " + message + "\nResponse:")
	return b.String()
}

func topRatedRestaurants(restaurants []restaurant.Restaurant, limit int) []restaurant.Restaurant {
	sorted := append([]restaurant.Restaurant{}, restaurants...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
