package di

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"compass-server/api"
	"compass-server/api/ollama"
	"compass-server/config"
	"compass-server/dao/catalog"
	redisdao "compass-server/dao/redis"
	"compass-server/db"
	"compass-server/logging"
	"compass-server/models"
	"compass-server/server"
	"compass-server/server/handlers"
	services "compass-server/service"
	"compass-server/util"
)

// Container holds all application dependencies.
type Container struct {
	CatalogDao            *catalog.CatalogDAO
	Dishes                map[string]models.Dish
	Regions               []models.Region
	ChatData              map[string]models.ChatEntry
	RedisClient           db.RedisClient
	ChatCache             services.ChatCache
	OllamaAPI             ollama.OllamaAPI
	LocationService       *services.LocationService
	HoursService          *services.HoursService
	SearchService         *services.SearchService
	RecommendationService *services.RecommendationService
	TourSearchService     *services.TourSearchService
	RouteService          *services.RouteService
	ChatService           *services.ChatService
	MuxRouter             *mux.Router
	Router                *server.Router
	CompassHttpServer     *server.CompassHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	logger := logging.ComponentLogger("di")
	logger.Info().Str("env", env).Msg("initializing container")

	ctx := context.Background()

	// Datasets. Each loader degrades to empty on failure; the catalog loader
	// logs its own outcome.
	catalogDao := catalog.LoadCatalog(config.GetResourcePath(config.RESTAURANTS_RESOURCE))

	dishes := map[string]models.Dish{}
	if dishesData, err := util.ReadDishesFromJSON(config.GetResourcePath(config.DISHES_RESOURCE)); err != nil {
		logger.Warn().Err(err).Msg("dishes dataset unavailable")
	} else {
		dishes = dishesData.Dishes
	}

	regions, err := util.ReadRegionsFromJSON(config.GetResourcePath(config.REGIONS_RESOURCE))
	if err != nil {
		logger.Warn().Err(err).Msg("regions dataset unavailable")
	}

	chatData, err := util.ReadChatDataFromJSON(config.GetResourcePath(config.CHAT_DATA_RESOURCE))
	if err != nil {
		logger.Warn().Err(err).Msg("chat dataset unavailable")
		chatData = map[string]models.ChatEntry{}
	}

	// Chat cache: Redis when reachable, in-process otherwise.
	cacheTTL := config.CHAT_CACHE_TTL_SECONDS * time.Second
	var redisClient db.RedisClient
	var chatCache services.ChatCache

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.GetRedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})
	candidate := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := candidate.Ping(); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable, chat cache falls back to memory")
		chatCache = services.NewMemoryChatCache(cacheTTL, config.CHAT_CACHE_MAX_ENTRIES)
	} else {
		redisClient = candidate
		chatCache = redisdao.NewRedisChatCacheDAO(redisClient, cacheTTL, config.CHAT_CACHE_MAX_ENTRIES)
	}

	// Ollama - using mock outside prod
	var ollamaApiClient ollama.OllamaAPI
	if env != "prod" {
		ollamaApiClient = ollama.NewOllamaApiClientMock()
		logger.Info().Msg("using mock ollama api")
	} else {
		httpClient := api.NewHTTPClient(config.GetOllamaEndpointBase(), config.OLLAMA_TIMEOUT_SECONDS*time.Second)
		ollamaApiClient = ollama.NewOllamaApiClient(httpClient, config.OLLAMA_MODEL)
		logger.Info().Str("model", config.OLLAMA_MODEL).Msg("using prod ollama api")
	}

	// Service layer
	locationService := services.NewLocationService()
	hoursService := services.NewHoursService()
	searchService := services.NewSearchService(catalogDao, locationService, hoursService)
	recommendationService := services.NewRecommendationService(catalogDao)
	tourSearchService := services.NewTourSearchService(catalogDao)
	routeService := services.NewRouteService(catalogDao)
	chatService := services.NewChatService(catalogDao, dishes, regions, chatData, ollamaApiClient, chatCache)

	// HTTP layer
	catalogHandler := handlers.NewCatalogHandler(catalogDao)
	searchHandler := handlers.NewSearchHandler(searchService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	tourHandler := handlers.NewTourHandler(tourSearchService)
	routeHandler := handlers.NewRouteHandler(routeService)
	chatHandler := handlers.NewChatHandler(chatService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(
		catalogHandler,
		searchHandler,
		recommendationHandler,
		tourHandler,
		routeHandler,
		chatHandler,
		muxRouter,
	)
	compassHttpServer := server.NewCompassHttpServer(router, muxRouter)

	return &Container{
		CatalogDao:            catalogDao,
		Dishes:                dishes,
		Regions:               regions,
		ChatData:              chatData,
		RedisClient:           redisClient,
		ChatCache:             chatCache,
		OllamaAPI:             ollamaApiClient,
		LocationService:       locationService,
		HoursService:          hoursService,
		SearchService:         searchService,
		RecommendationService: recommendationService,
		TourSearchService:     tourSearchService,
		RouteService:          routeService,
		ChatService:           chatService,
		MuxRouter:             muxRouter,
		Router:                router,
		CompassHttpServer:     compassHttpServer,
	}
}
