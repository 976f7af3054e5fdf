package main

import (
	"net/http"
	"os"
	"time"

	"draw-guess/internal/config"
	"draw-guess/internal/server"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Warn().Err(err).Msg("could not load .env")
	}
	cfg := config.Load()

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	srv := server.New(cfg, logger)
	logger.Info().Str("addr", addr).Msg("draw-guess server listening")
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
