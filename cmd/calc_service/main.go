package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calc-service/internal/api"
	"calc-service/internal/auth"
	"calc-service/internal/config"
	"calc-service/internal/logger"
	"calc-service/internal/storage"
)

func main() {
	envFile := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.New("server", "info").Fatal().Err(err).Msg("loading config failed")
	}

	log := logger.New("server", cfg.LogLevel)

	db, err := storage.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.DatabaseDSN).Msg("opening storage failed")
	}

	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenDuration)
	handler := api.NewHandler(
		storage.NewUserRepository(db),
		storage.NewCalculationRepository(db),
		tokens,
		log,
	)

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler.Routes(),
	}

	go func() {
		log.Info().Str("address", cfg.Address).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
