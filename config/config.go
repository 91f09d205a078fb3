package config

import (
	"os"
	"path/filepath"
)

// Server config
const SERVER_ADDRESS = ":8080"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Ollama chatbot config
const OLLAMA_ENDPOINT_BASE = "http://localhost:11434"
const OLLAMA_MODEL = "llama3.2:3b"
const OLLAMA_TIMEOUT_SECONDS = 15

// Chat cache policy
const CHAT_CACHE_TTL_SECONDS = 3600
const CHAT_CACHE_MAX_ENTRIES = 500

// Search defaults. The fallback point is Ben Thanh Market, Ho Chi Minh City.
const DEFAULT_USER_LATITUDE = 10.7725
const DEFAULT_USER_LONGITUDE = 106.6980
const DEFAULT_SEARCH_RADIUS_KM = 10.0

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const RESTAURANTS_RESOURCE = "restaurants.json"
const DISHES_RESOURCE = "dishes.json"
const REGIONS_RESOURCE = "regions.json"
const CHAT_DATA_RESOURCE = "data_chat.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// GetRedisAddress allows overriding the Redis address via environment.
func GetRedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// GetOllamaEndpointBase allows overriding the Ollama endpoint via environment.
func GetOllamaEndpointBase() string {
	if base := os.Getenv("OLLAMA_ENDPOINT"); base != "" {
		return base
	}
	return OLLAMA_ENDPOINT_BASE
}
