package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"compass-server/config"
	"compass-server/logging"
)

type CompassHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	logger    zerolog.Logger
}

func NewCompassHttpServer(router *Router, muxRouter *mux.Router) *CompassHttpServer {
	return &CompassHttpServer{
		router:    router,
		muxRouter: muxRouter,
		logger:    logging.ComponentLogger("http_server"),
	}
}

// Start registers the routes, serves until SIGINT/SIGTERM, then drains
// in-flight requests before returning.
func (s *CompassHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    config.SERVER_ADDRESS,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info().Str("address", config.SERVER_ADDRESS).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	<-stop
	s.logger.Info().Msg("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	s.logger.Info().Msg("server exiting")
}
