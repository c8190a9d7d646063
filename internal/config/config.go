package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the server.
type Config struct {
	Addr     string
	LogLevel string

	TickInterval    time.Duration
	CommandBuffer   int
	BroadcastBuffer int
	SendBuffer      int

	ArenaWidth  float32
	ArenaHeight float32

	FoodFloor     int
	FoodRadiusMin float32
	FoodRadiusMax float32
}

// Load reads configuration from an optional gario.cfg.json in configDir,
// falling back to defaults for anything unset.
func Load(configDir string) (Config, error) {
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("game.tickMillis", 10)
	viper.SetDefault("game.commandBuffer", 100)
	viper.SetDefault("game.broadcastBuffer", 16)
	viper.SetDefault("game.sendBuffer", 256)

	viper.SetDefault("arena.width", 800)
	viper.SetDefault("arena.height", 600)

	viper.SetDefault("food.floor", 50)
	viper.SetDefault("food.minRadius", 2.0)
	viper.SetDefault("food.maxRadius", 6.0)

	viper.SetConfigName("gario.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is fine; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return Config{
		Addr:            viper.GetString("addr"),
		LogLevel:        viper.GetString("logLevel"),
		TickInterval:    time.Duration(viper.GetInt("game.tickMillis")) * time.Millisecond,
		CommandBuffer:   viper.GetInt("game.commandBuffer"),
		BroadcastBuffer: viper.GetInt("game.broadcastBuffer"),
		SendBuffer:      viper.GetInt("game.sendBuffer"),
		ArenaWidth:      float32(viper.GetFloat64("arena.width")),
		ArenaHeight:     float32(viper.GetFloat64("arena.height")),
		FoodFloor:       viper.GetInt("food.floor"),
		FoodRadiusMin:   float32(viper.GetFloat64("food.minRadius")),
		FoodRadiusMax:   float32(viper.GetFloat64("food.maxRadius")),
	}, nil
}
