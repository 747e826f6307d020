package internal

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	v1 "refsource/api/v1"
	"refsource/internal/config"
	"refsource/internal/http"
	"refsource/internal/http/middleware"
	"refsource/pkg/extension"
	"refsource/pkg/referrer"
)

// publicCORSConfig returns the standard CORS configuration for public endpoints.
var publicCORSConfig = cors.Config{
	AllowOrigins: "*",
	AllowMethods: "POST,GET,OPTIONS",
	AllowHeaders: "Origin, Content-Type, Accept, Accept-Language",
}

// MountRoutes mounts every route on app.
func MountRoutes(app *fiber.App, cfg *config.Config, engine *referrer.Engine, logger *slog.Logger) {
	app.Use(middleware.ReferrerContext(engine, cfg.Domain))
	if cfg.CSRFCheck {
		app.Use(middleware.SameSiteReferrer(logger))
	}

	app.Get("/health", http.HealthIndexAction(engine))

	api := app.Group("/api/v1", cors.New(publicCORSConfig))
	api.Get("/referrer", v1.ReferrerInfoHandler(logger))
	api.Get("/referrer/match", v1.MatchHandler())
	api.Post("/referrer/batch", v1.BatchHandler(engine, v1.BatchOptions{
		Workers: cfg.BatchWorkers,
		MaxURLs: cfg.BatchMaxURLs,
	}, logger))
	api.Get("/options", http.OptionsIndexAction(engine, cfg.DefaultLanguage, logger))

	extension.ApplyRoutes(app)
}
