package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"compass-server/di"
	"compass-server/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}
	logging.InitLogger("compass-server", env)

	container := di.NewContainer(env)

	log.Info().
		Int("restaurants", container.CatalogDao.Count()).
		Int("dishes", len(container.Dishes)).
		Int("regions", len(container.Regions)).
		Int("chat_entries", len(container.ChatData)).
		Msg("datasets loaded")

	container.CompassHttpServer.Start()
}
