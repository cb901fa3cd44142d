package main

import (
	"log/slog"
	"os"

	"form-relay-api/config"
	"form-relay-api/internal/destination"
	"form-relay-api/internal/discord"
	"form-relay-api/internal/formsubmission"
	"form-relay-api/internal/logs"
	"form-relay-api/internal/metrics"
	"form-relay-api/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logs.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)
	if dotenvErr != nil {
		log.Debug("no .env file loaded", "error", dotenvErr)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	m := metrics.New()
	svc := &formsubmission.RelayService{
		Resolver:    destination.NewResolver(cfg.Webhooks),
		Dispatcher:  discord.NewClient(cfg.DeliveryTimeout, m),
		Display:     cfg.Display,
		BotUsername: cfg.BotUsername,
		Log:         log,
		Outcomes:    m,
	}

	r := server.NewRouter(cfg, server.Deps{Relay: svc, Metrics: m, Log: log})

	// --- Cloud Run expects plain HTTP, on $PORT, bind to 0.0.0.0 ---
	log.Info("starting server",
		"addr", "0.0.0.0:"+cfg.Port,
		"forms", len(cfg.Webhooks),
		"delivery_timeout", cfg.DeliveryTimeout.String(),
	)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
