package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"luxurydrives/internal/config"
	"luxurydrives/internal/logger"
	"luxurydrives/internal/router"
	"luxurydrives/internal/services"
	"luxurydrives/internal/session"
	"luxurydrives/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting LuxuryDrives rental service")

	st := store.New()

	local, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		// A corrupt session file is not worth refusing to start over.
		log.Warn().Err(err).Str("path", cfg.SessionFile).Msg("Discarding unreadable session storage")
		if err := os.Remove(cfg.SessionFile); err != nil {
			log.Fatal().Err(err).Msg("Could not reset session storage")
		}
		if local, err = session.NewFileStore(cfg.SessionFile); err != nil {
			log.Fatal().Err(err).Msg("Could not open session storage")
		}
	}

	authService := services.NewAuthService(cfg.JWTSecret, log)
	sessions := session.NewManager(st, local, authService, cfg.SimulatedDelay, log)
	if acc, ok := sessions.Current(); ok {
		log.Info().Str("account_id", acc.ID).Msg("Restored persisted session")
	}

	r := router.SetupRouter(st, sessions, cfg.JWTSecret, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
