package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/medisync/healthcare-portal/internal/api"
	"github.com/medisync/healthcare-portal/internal/core/ports"
	"github.com/medisync/healthcare-portal/internal/infrastructure/backend"
	"github.com/medisync/healthcare-portal/internal/infrastructure/session"
	"github.com/medisync/healthcare-portal/internal/pkg/config"
	"github.com/medisync/healthcare-portal/pkg/logger"
)

// @title        Healthcare Portal
// @version      1.0
// @description  Server-rendered portal for the healthcare management system.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "healthcare-portal",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Session store ---
	var store ports.SessionStore
	rdb, err := session.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	switch {
	case err == nil:
		store = session.NewRedisStore(rdb, cfg.Session.TTL)
		defer rdb.Close()
	case cfg.Env == "development":
		// Sessions won't survive a restart, which is fine on a laptop.
		log.Warn().Err(err).Msg("redis unreachable, falling back to in-memory sessions")
		store = session.NewMemoryStore(cfg.Session.TTL)
	default:
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// --- Upstream API client ---
	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	e := api.NewRouter(cfg, store, rdb, client, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting portal")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
