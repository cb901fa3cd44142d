package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"form-relay-api/config"
	"form-relay-api/internal/formsubmission"
	"form-relay-api/internal/logs"
	"form-relay-api/internal/metrics"
	"form-relay-api/internal/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the HTTP layer needs beyond configuration.
type Deps struct {
	Relay   formsubmission.RelayServiceAPI
	Metrics *metrics.Metrics
	Log     *slog.Logger
}

func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic while handling request", "path", c.Request.URL.Path, "panic", recovered)
		formsubmission.WriteError(c, fmt.Errorf("panic: %v", recovered))
	}))
	r.Use(logs.RequestLogger(log))

	var outcomes formsubmission.OutcomeRecorder
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		outcomes = deps.Metrics
	}

	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	r.NoMethod(formsubmission.MethodNotAllowed)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	auth := middlewares.AuthMiddleware(cfg.AuthToken, cfg.AuthTokenHash)
	formsubmission.RegisterRoutes(r, deps.Relay, auth, log, outcomes)

	return r
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods: []string{"POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", formsubmission.OverrideHeader},
	}

	for _, o := range origins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = origins
	return cc
}
