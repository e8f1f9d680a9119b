package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warelabel/label-engine/config"
	"github.com/warelabel/label-engine/internal/api"
	"github.com/warelabel/label-engine/internal/logger"
)

// Version is set during build via ldflags
var Version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	log := logger.Logger()

	server := api.NewServer(cfg, log)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Router(),
	}

	go func() {
		log.Info().
			Str("version", Version).
			Str("port", cfg.Server.Port).
			Str("codec", cfg.Engine.Codec).
			Msg("label engine listening")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
