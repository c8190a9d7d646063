package main

import (
	"os"

	"github.com/rs/zerolog"

	"gario/internal/config"
	"gario/internal/game"
	"gario/internal/server"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("logLevel", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	manager := game.NewManager(game.Settings{
		TickInterval:    cfg.TickInterval,
		ArenaWidth:      cfg.ArenaWidth,
		ArenaHeight:     cfg.ArenaHeight,
		FoodFloor:       cfg.FoodFloor,
		FoodRadiusMin:   cfg.FoodRadiusMin,
		FoodRadiusMax:   cfg.FoodRadiusMax,
		CommandBuffer:   cfg.CommandBuffer,
		BroadcastBuffer: cfg.BroadcastBuffer,
	}, logger.With().Str("component", "game").Logger())

	srv := server.New(manager, cfg.SendBuffer, logger.With().Str("component", "server").Logger())

	logger.Info().Msg("starting gario server")
	if err := srv.Start(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
