package services

import (
	"sync"

	"compass-server/dao/catalog"
	"compass-server/models/restaurant"

	"github.com/google/uuid"
)

// Route mutation statuses.
const (
	RouteStatusAdded         = "added"
	RouteStatusAlreadyExists = "already_exists"
	RouteStatusRemoved       = "removed"
	RouteStatusNotFound      = "not_found"
	RouteStatusCleared       = "cleared"
)

// DefaultSessionID is the shared session used when a client supplies no
// session token, preserving single-user behavior.
const DefaultSessionID = "default"

// RouteService keeps per-session tour routes: ordered, de-duplicated venue
// id lists. State is process-resident only. The mutex covers the
// check-then-mutate sequences so concurrent requests cannot corrupt a route.
type RouteService struct {
	mu         sync.Mutex
	catalogDao *catalog.CatalogDAO
	sessions   map[string][]int
}

func NewRouteService(catalogDao *catalog.CatalogDAO) *RouteService {
	return &RouteService{
		catalogDao: catalogDao,
		sessions:   make(map[string][]int),
	}
}

// NewSessionID mints a fresh session token for clients that want a route of
// their own.
func (s *RouteService) NewSessionID() string {
	return uuid.NewString()
}

// Add appends a venue id to the session's route unless already present.
func (s *RouteService) Add(sessionID string, restaurantID int) (string, []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	route := s.sessions[sessionID]
	for _, id := range route {
		if id == restaurantID {
			return RouteStatusAlreadyExists, snapshot(route)
		}
	}
	route = append(route, restaurantID)
	s.sessions[sessionID] = route
	return RouteStatusAdded, snapshot(route)
}

// Remove deletes a venue id from the session's route if present.
func (s *RouteService) Remove(sessionID string, restaurantID int) (string, []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	route := s.sessions[sessionID]
	for i, id := range route {
		if id == restaurantID {
			route = append(route[:i], route[i+1:]...)
			s.sessions[sessionID] = route
			return RouteStatusRemoved, snapshot(route)
		}
	}
	return RouteStatusNotFound, snapshot(route)
}

// Clear empties the session's route.
func (s *RouteService) Clear(sessionID string) (string, []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = nil
	return RouteStatusCleared, []int{}
}

// Contains reports whether the venue id is in the session's route.
func (s *RouteService) Contains(sessionID string, restaurantID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.sessions[sessionID] {
		if id == restaurantID {
			return true
		}
	}
	return false
}

// Resolve returns the full catalog records for the session's route, in route
// order. Ids with no catalog entry are silently skipped.
func (s *RouteService) Resolve(sessionID string) []restaurant.Restaurant {
	s.mu.Lock()
	route := snapshot(s.sessions[sessionID])
	s.mu.Unlock()

	resolved := []restaurant.Restaurant{}
	for _, id := range route {
		if r, ok := s.catalogDao.GetByID(id); ok {
			resolved = append(resolved, r)
		}
	}
	return resolved
}

func snapshot(route []int) []int {
	out := make([]int, len(route))
	copy(out, route)
	return out
}
