package server

import (
	"compass-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	catalogHandler        *handlers.CatalogHandler
	searchHandler         *handlers.SearchHandler
	recommendationHandler *handlers.RecommendationHandler
	tourHandler           *handlers.TourHandler
	routeHandler          *handlers.RouteHandler
	chatHandler           *handlers.ChatHandler
	router                *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	searchHandler *handlers.SearchHandler,
	recommendationHandler *handlers.RecommendationHandler,
	tourHandler *handlers.TourHandler,
	routeHandler *handlers.RouteHandler,
	chatHandler *handlers.ChatHandler,
	router *mux.Router) *Router {
	return &Router{
		catalogHandler:        catalogHandler,
		searchHandler:         searchHandler,
		recommendationHandler: recommendationHandler,
		tourHandler:           tourHandler,
		routeHandler:          routeHandler,
		chatHandler:           chatHandler,
		router:                router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/health", r.catalogHandler.Health).Methods("GET")
	r.router.HandleFunc("/v1/catalog/map", r.catalogHandler.Map).Methods("GET")

	r.router.HandleFunc("/v1/search", r.searchHandler.Search).Methods("POST")
	r.router.HandleFunc("/v1/recommendations", r.recommendationHandler.Recommend).Methods("POST")

	r.router.HandleFunc("/v1/tour/search", r.tourHandler.Search).Methods("POST")
	r.router.HandleFunc("/v1/tour/restaurants", r.tourHandler.Restaurants).Methods("GET")

	// Route endpoints are session-scoped via the X-Session-ID header.
	r.router.HandleFunc("/v1/session", r.routeHandler.NewSession).Methods("GET", "POST")
	r.router.HandleFunc("/v1/tour/route/add", r.routeHandler.Add).Methods("POST")
	r.router.HandleFunc("/v1/tour/route/remove", r.routeHandler.Remove).Methods("POST")
	r.router.HandleFunc("/v1/tour/route/clear", r.routeHandler.Clear).Methods("POST")
	r.router.HandleFunc("/v1/tour/route", r.routeHandler.Get).Methods("GET")
	r.router.HandleFunc("/v1/tour/route/check/{id}", r.routeHandler.Check).Methods("GET")

	r.router.HandleFunc("/v1/chat", r.chatHandler.Chat).Methods("POST")
	r.router.HandleFunc("/v1/chat/stats", r.chatHandler.Stats).Methods("GET")
}
