package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"compass-server/models"
	services "compass-server/service"
)

type RouteHandler struct {
	routeService *services.RouteService
}

func NewRouteHandler(routeService *services.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

// NewSession handles /v1/session: mints a token clients can send as
// X-Session-ID to get a route of their own.
func (h *RouteHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"session_id": h.routeService.NewSessionID(),
	})
}

// Add handles POST /v1/tour/route/add.
func (h *RouteHandler) Add(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := h.parseRouteRequest(w, r)
	if !ok {
		return
	}
	status, route := h.routeService.Add(sessionID(r), restaurantID)
	writeJSON(w, http.StatusOK, models.RouteStatusResponse{Status: status, Route: route})
}

// Remove handles POST /v1/tour/route/remove.
func (h *RouteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := h.parseRouteRequest(w, r)
	if !ok {
		return
	}
	status, route := h.routeService.Remove(sessionID(r), restaurantID)
	writeJSON(w, http.StatusOK, models.RouteStatusResponse{Status: status, Route: route})
}

// Clear handles POST /v1/tour/route/clear.
func (h *RouteHandler) Clear(w http.ResponseWriter, r *http.Request) {
	status, route := h.routeService.Clear(sessionID(r))
	writeJSON(w, http.StatusOK, models.RouteStatusResponse{Status: status, Route: route})
}

// Get handles GET /v1/tour/route, returning full catalog records in route
// order.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	route := h.routeService.Resolve(sessionID(r))
	writeJSON(w, http.StatusOK, models.RouteResponse{Count: len(route), Route: route})
}

// Check handles GET /v1/tour/route/check/{id}.
func (h *RouteHandler) Check(w http.ResponseWriter, r *http.Request) {
	idText := mux.Vars(r)["id"]
	restaurantID, err := strconv.Atoi(idText)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, models.RouteCheckResponse{
		RestaurantID: restaurantID,
		InRoute:      h.routeService.Contains(sessionID(r), restaurantID),
	})
}

func (h *RouteHandler) parseRouteRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	var request models.RouteRequest
	if !decodeBody(w, r, &request) {
		return 0, false
	}
	if request.RestaurantID == nil {
		writeError(w, http.StatusBadRequest, "Missing restaurant_id")
		return 0, false
	}
	return *request.RestaurantID, true
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get(SESSION_ID_HEADER); id != "" {
		return id
	}
	return services.DefaultSessionID
}
