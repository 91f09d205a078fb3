package services

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"compass-server/models/restaurant"
)

// RuleResponse is a rule-engine hit with its confidence and the venue names
// it refers to.
type RuleResponse struct {
	Response    string
	Confidence  float64
	Source      string
	Restaurants []string
}

var greetingWords = []string{"hello", "hi", "hey"}
var greetingPhrases = []string{"good morning", "good afternoon", "good evening"}

// isGreeting matches the single-word greetings on word boundaries so "hi"
// does not fire inside words like "chicken".
func isGreeting(queryLower string) bool {
	for _, field := range strings.Fields(queryLower) {
		for _, w := range greetingWords {
			if strings.Trim(field, "!,.?") == w {
				return true
			}
		}
	}
	return containsAnyWord(queryLower, greetingPhrases)
}

var spiceQueryKeywords = []string{"spicy", "spice", "heat", "hot", "how spicy", "spiciness"}

var tasteKeywords = []string{"taste", "flavor", "flavour", "tastes like", "taste like", "flavors like", "flavours like"}

var priceQueryKeywords = []string{
	"cheap", "budget", "affordable", "under", "less than", "expensive",
	"price", "cost", "pricing", "how much", "how cheap", "how expensive",
}

var cuisineQueryMap = map[string][]string{
	"vietnamese": {"vietnamese", "vietnam"},
	"chinese":    {"chinese", "china"},
	"japanese":   {"japanese", "japan"},
	"korean":     {"korean", "korea"},
	"vegetarian": {"vegetarian", "veggie"},
	"vegan":      {"vegan"},
}

var priceNumberPattern = regexp.MustCompile(`\d+(?:,\d+)*[km]?`)

// foldDiacritics strips the handful of Vietnamese diacritics that show up in
// dish names, so "pho" matches "phở".
var foldDiacritics = strings.NewReplacer("ở", "o", "ấ", "a", "ế", "e", "ì", "i", "ạ", "a")

// tryRuleBased answers a user message from the loaded datasets without the
// LLM. Returns nil when no rule applies.
func (s *ChatService) tryRuleBased(userMessage string) *RuleResponse {
	queryLower := strings.ToLower(userMessage)

	if resp := s.matchChatData(userMessage, queryLower); resp != nil {
		return resp
	}
	if isGreeting(queryLower) {
		return &RuleResponse{
			Response:   "👋 Hey there! Ready to explore some amazing Vietnamese food in Ho Chi Minh City?",
			Confidence: 0.95,
			Source:     "rule-based",
		}
	}
	if containsAnyWord(queryLower, spiceQueryKeywords) {
		return s.answerSpiceQuery(queryLower)
	}
	if resp := s.matchDishInfo(queryLower); resp != nil {
		return resp
	}
	if containsAnyWord(queryLower, priceQueryKeywords) {
		return s.answerPriceQuery(queryLower)
	}
	if resp := s.matchCuisineQuery(queryLower); resp != nil {
		return resp
	}
	if containsAnyWord(queryLower, bestQueryKeywords) {
		return s.answerBestQuery(queryLower)
	}
	if resp := s.matchRestaurantName(queryLower); resp != nil {
		return resp
	}
	if resp := s.matchRegion(queryLower); resp != nil {
		return resp
	}
	return nil
}

// matchChatData scores the canned keyword entries: 4 for an exact match, 2
// for a keyword contained in the query, 1 for any keyword word longer than
// two characters appearing in it.
func (s *ChatService) matchChatData(userMessage, queryLower string) *RuleResponse {
	bestKey := ""
	bestScore := 0
	for _, key := range sortedKeys(s.chatData) {
		entry := s.chatData[key]
		score := 0
		for _, kw := range entry.Keywords {
			kwLower := strings.ToLower(kw)
			if queryLower == kwLower {
				score += 4
			} else if strings.Contains(queryLower, kwLower) {
				score += 2
			} else {
				for _, part := range strings.Fields(kwLower) {
					if len(part) > 2 && strings.Contains(queryLower, part) {
						score++
						break
					}
				}
			}
		}
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}
	if bestKey == "" || bestScore == 0 {
		return nil
	}
	responses := s.chatData[bestKey].Responses
	if len(responses) == 0 {
		return nil
	}
	pick := responses[0]
	if len(responses) > 1 {
		pick = responses[stableHash(userMessage)%len(responses)]
	}
	return &RuleResponse{Response: pick, Confidence: 0.9, Source: "data_chat"}
}

func (s *ChatService) answerSpiceQuery(queryLower string) *RuleResponse {
	for _, dishID := range sortedKeys(s.dishes) {
		dish := s.dishes[dishID]
		dishName := strings.ToLower(dish.Name)
		if dishName == "" || !strings.Contains(queryLower, dishName) {
			continue
		}
		isSpicy := strings.Contains(dishName, "bún bò huế") ||
			strings.Contains(strings.ToLower(dishID), "bun bo hue") ||
			strings.Contains(strings.ToLower(dish.Description), "spicy")
		if isSpicy {
			return &RuleResponse{
				Response: fmt.Sprintf("🌶️ %s is known to be quite spicy! It typically has a bold, fiery flavor. "+
					"If you're sensitive to spice, you can ask for it less spicy ('ít cay' in Vietnamese).", dish.Name),
				Confidence: 0.9,
				Source:     "rule-based",
			}
		}
		return &RuleResponse{
			Response: fmt.Sprintf("🍜 %s is generally not very spicy, but you can add chili sauce or "+
				"fresh chilies to adjust the heat level to your preference!", dish.Name),
			Confidence: 0.9,
			Source:     "rule-based",
		}
	}

	return &RuleResponse{
		Response: "🌶️ Vietnamese food in Ho Chi Minh City varies in spiciness:\n" +
			"• Mild dishes: Phở, Bánh Mì, Cơm Tấm, Hủ Tiếu (usually not spicy)\n" +
			"• Spicy dishes: Bún Bò Huế, some noodle soups with chili\n" +
			"• Customizable: most places let you add chili sauce or fresh chilies\n" +
			"• Tip: say 'không cay' (not spicy) or 'ít cay' (less spicy) when ordering!",
		Confidence: 0.9,
		Source:     "rule-based",
	}
}

var bestQueryKeywords = []string{"best", "top", "recommend", "suggest"}

func (s *ChatService) matchDishInfo(queryLower string) *RuleResponse {
	// "best phở" wants venues, not the dish encyclopedia
	if containsAnyWord(queryLower, bestQueryKeywords) {
		return nil
	}

	queryFolded := foldDiacritics.Replace(queryLower)

	for _, dishID := range sortedKeys(s.dishes) {
		dish := s.dishes[dishID]
		dishName := strings.ToLower(dish.Name)
		dishNameFolded := foldDiacritics.Replace(dishName)

		matched := (dishName != "" && strings.Contains(queryLower, dishName)) ||
			(dishNameFolded != "" && strings.Contains(queryFolded, dishNameFolded)) ||
			strings.Contains(queryLower, strings.ToLower(dishID))
		if !matched {
			continue
		}

		// Taste queries come first so "what does phở taste like" is not
		// answered with the generic description.
		hasTasteQuery := containsAnyWord(queryLower, tasteKeywords) ||
			(strings.Contains(queryLower, "how does") && strings.Contains(queryLower, "taste")) ||
			(strings.Contains(queryLower, "what does") && strings.Contains(queryLower, "taste"))
		if hasTasteQuery {
			if len(dish.Flavors) > 0 {
				return &RuleResponse{
					Response:   fmt.Sprintf("🍜 %s tastes: %s.", dish.Name, strings.Join(dish.Flavors, ", ")),
					Confidence: 0.95,
					Source:     "rule-based",
				}
			}
			if dish.Description != "" {
				return &RuleResponse{
					Response:   fmt.Sprintf("🍜 %s: %s", dish.Name, truncate(dish.Description, 200)),
					Confidence: 0.85,
					Source:     "rule-based",
				}
			}
		}
		if containsAnyWord(queryLower, []string{"ingredient", "what's in", "what is in", "recipe"}) {
			if len(dish.Ingredients) > 0 {
				ingredients := dish.Ingredients
				if len(ingredients) > 8 {
					ingredients = ingredients[:8]
				}
				return &RuleResponse{
					Response:   fmt.Sprintf("🧾 Ingredients for %s: %s.", dish.Name, strings.Join(ingredients, ", ")),
					Confidence: 0.9,
					Source:     "rule-based",
				}
			}
		}
		if containsAnyWord(queryLower, []string{"history", "origin", "came from"}) {
			if dish.History != "" {
				return &RuleResponse{
					Response:   fmt.Sprintf("📚 %s — %s", dish.Name, truncate(dish.History, 300)),
					Confidence: 0.9,
					Source:     "rule-based",
				}
			}
		}
		if dish.Description != "" {
			return &RuleResponse{
				Response:   fmt.Sprintf("🍜 %s: %s", dish.Name, truncate(dish.Description, 200)),
				Confidence: 0.85,
				Source:     "rule-based",
			}
		}
	}
	return nil
}

func (s *ChatService) answerPriceQuery(queryLower string) *RuleResponse {
	all := s.catalogDao.All()

	threshold := 50000.0
	numberText := priceNumberPattern.FindString(queryLower)
	if numberText != "" {
		if parsed, ok := parsePrice(numberText); ok {
			threshold = parsed
		}
	}

	// "cheap"/"affordable" without a number uses 60% of the catalog average
	// as the bar.
	if numberText == "" && containsAnyWord(queryLower, []string{"cheap", "affordable", "budget"}) {
		avg := averagePrice(all)
		if avg > 0 {
			cheapThreshold := avg * 0.6
			names := topRatedNamesUnder(all, cheapThreshold, 5)
			if len(names) > 0 {
				return &RuleResponse{
					Response: fmt.Sprintf("💸 Budget-friendly picks (under %s VND): %s. Most dishes here are very affordable!",
						formatPrice(cheapThreshold), strings.Join(names, ", ")),
					Confidence:  0.88,
					Source:      "rule-based",
					Restaurants: names,
				}
			}
		}
	}

	names := topRatedNamesUnder(all, threshold, 5)
	if len(names) > 0 {
		return &RuleResponse{
			Response: fmt.Sprintf("💸 Budget-friendly picks under %s VND: %s.",
				formatPrice(threshold), strings.Join(names, ", ")),
			Confidence:  0.88,
			Source:      "rule-based",
			Restaurants: names,
		}
	}

	// Nothing under the bar: hand the question to the LLM
	return nil
}

func (s *ChatService) matchCuisineQuery(queryLower string) *RuleResponse {
	for _, cuisine := range sortedKeys(cuisineQueryMap) {
		if !containsAnyWord(queryLower, cuisineQueryMap[cuisine]) {
			continue
		}
		matches := []restaurant.Restaurant{}
		for _, r := range s.catalogDao.All() {
			for _, c := range r.Cuisines {
				if strings.ToLower(c) == cuisine {
					matches = append(matches, r)
					break
				}
			}
		}
		if len(matches) == 0 {
			continue
		}
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].Rating > matches[j].Rating })
		names := restaurantNames(matches, 5)
		return &RuleResponse{
			Response:    fmt.Sprintf("🍜 Top %s spots: %s.", cuisine, strings.Join(names, ", ")),
			Confidence:  0.85,
			Source:      "rule-based",
			Restaurants: names,
		}
	}
	return nil
}

func (s *ChatService) answerBestQuery(queryLower string) *RuleResponse {
	for _, dishID := range sortedKeys(s.dishes) {
		dishName := strings.ToLower(s.dishes[dishID].Name)
		if dishName == "" || !strings.Contains(queryLower, dishName) {
			continue
		}
		matches := []restaurant.Restaurant{}
		for _, r := range s.catalogDao.All() {
			if strings.Contains(strings.ToLower(strings.Join(r.Tags, " ")), dishName) {
				matches = append(matches, r)
			}
		}
		if len(matches) == 0 {
			continue
		}
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].Rating > matches[j].Rating })
		names := restaurantNames(matches, 5)
		return &RuleResponse{
			Response:    fmt.Sprintf("🏆 Top places for %s: %s.", s.dishes[dishID].Name, strings.Join(names, ", ")),
			Confidence:  0.85,
			Source:      "rule-based",
			Restaurants: names,
		}
	}

	names := restaurantNames(topRatedRestaurants(s.catalogDao.All(), 5), 5)
	return &RuleResponse{
		Response:    fmt.Sprintf("🌟 Top rated restaurants: %s.", strings.Join(names, ", ")),
		Confidence:  0.8,
		Source:      "rule-based",
		Restaurants: names,
	}
}

func (s *ChatService) matchRestaurantName(queryLower string) *RuleResponse {
	for _, r := range s.catalogDao.All() {
		rname := strings.ToLower(r.Name)
		if rname == "" {
			continue
		}
		if strings.Contains(queryLower, rname) || strings.Contains(rname, queryLower) {
			address := r.Address
			if address == "" {
				address = "N/A"
			}
			return &RuleResponse{
				Response: fmt.Sprintf("📍 %s — Rating: %.1f • Price: %s • Hours: %s • Address: %s",
					r.Name, r.Rating, r.PriceText, r.OpenHours, address),
				Confidence: 0.9,
				Source:     "rule-based",
			}
		}
	}
	return nil
}

func (s *ChatService) matchRegion(queryLower string) *RuleResponse {
	for _, region := range s.regions {
		for _, rn := range []string{region.ID, region.Name, region.NameEn} {
			rnLower := strings.ToLower(rn)
			if rnLower == "" || !strings.Contains(queryLower, rnLower) {
				continue
			}
			specialties := region.Specialties
			if len(specialties) > 5 {
				specialties = specialties[:5]
			}
			displayName := region.NameEn
			if displayName == "" {
				displayName = region.Name
			}
			return &RuleResponse{
				Response: fmt.Sprintf("📌 %s specialties: %s. Want restaurant recommendations?",
					displayName, strings.Join(specialties, ", ")),
				Confidence: 0.85,
				Source:     "rule-based",
			}
		}
	}
	return nil
}

// ---- helpers ----

func containsAnyWord(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stableHash(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32())
}

// truncate cuts on rune boundaries so Vietnamese text is never split mid-glyph.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// parsePrice reads "50000", "50,000" or "50k" into VND.
func parsePrice(text string) (float64, bool) {
	text = strings.TrimSpace(strings.ToLower(strings.ReplaceAll(text, ",", "")))
	multiplier := 1.0
	if strings.HasSuffix(text, "k") {
		multiplier = 1000.0
		text = strings.TrimSuffix(text, "k")
	} else if strings.HasSuffix(text, "m") {
		multiplier = 1000000.0
		text = strings.TrimSuffix(text, "m")
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value * multiplier, true
}

func formatPrice(price float64) string {
	n := int64(price)
	text := strconv.FormatInt(n, 10)
	out := ""
	for i, d := range text {
		if i > 0 && (len(text)-i)%3 == 0 {
			out += ","
		}
		out += string(d)
	}
	return out
}

func averagePrice(restaurants []restaurant.Restaurant) float64 {
	sum, count := 0.0, 0
	for _, r := range restaurants {
		if r.AveragePrice > 0 {
			sum += r.AveragePrice
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func topRatedNamesUnder(restaurants []restaurant.Restaurant, threshold float64, limit int) []string {
	cheap := []restaurant.Restaurant{}
	for _, r := range restaurants {
		if r.AveragePrice <= threshold {
			cheap = append(cheap, r)
		}
	}
	sort.SliceStable(cheap, func(i, j int) bool { return cheap[i].Rating > cheap[j].Rating })
	return restaurantNames(cheap, limit)
}

func restaurantNames(restaurants []restaurant.Restaurant, limit int) []string {
	if len(restaurants) > limit {
		restaurants = restaurants[:limit]
	}
	names := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		names = append(names, r.Name)
	}
	return names
}
