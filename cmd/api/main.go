package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sonnasweet/ordering-system/internal/api"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/config"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/db/redis"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/supabase"
	"github.com/sonnasweet/ordering-system/pkg/logger"
)

// @title Sonna Sweet Ordering API
// @version 1.0
// @description REST backend for the Sonna Sweet food-ordering application.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	sb, err := supabase.New(supabase.Config{
		URL:            cfg.Supabase.URL,
		AnonKey:        cfg.Supabase.AnonKey,
		ServiceRoleKey: cfg.Supabase.ServiceRoleKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("hosted database client setup failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional; without it the rate limiter is disabled.
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(sb, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
