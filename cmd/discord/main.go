package main

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/CashPoolRPG_Go/internal/discord"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
)

// botConfig is read from the environment.
type botConfig struct {
	Token              string `env:"DISCORD_TOKEN,required"`
	AppID              string `env:"DISCORD_APP_ID,required"`
	APIURL             string `env:"API_URL" envDefault:"http://localhost:8080"`
	APIKey             string `env:"API_KEY"`
	ForceCommandUpdate bool   `env:"DISCORD_FORCE_COMMAND_UPDATE"`
	HealthPort         string `env:"DISCORD_HEALTH_PORT" envDefault:"8082"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`
}

func main() {
	_ = godotenv.Load()

	var cfg botConfig
	if err := env.Parse(&cfg); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "cashpool-discord", cfg.Version, cfg.Environment, false))
	slog.Info("Configured API URL", "url", cfg.APIURL)
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}
	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	bot, err := discord.New(discord.Config{
		Token:              cfg.Token,
		AppID:              cfg.AppID,
		APIURL:             cfg.APIURL,
		APIKey:             cfg.APIKey,
		ForceCommandUpdate: cfg.ForceCommandUpdate,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	healthServer.Start()
	defer healthServer.Stop()

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}
