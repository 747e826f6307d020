// Package app provides the public API for embedding the refsource server.
// Programs that add routes or labels import this package together with
// pkg/extension and pkg/referrer.
package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"refsource/internal"
	"refsource/internal/config"
	"refsource/internal/extensions"
	"refsource/pkg/referrer"
)

// Re-export core types
type (
	Application = internal.Application
	Config      = config.Config
)

// GetConfig returns the application configuration
func GetConfig() *Config {
	return config.GetConfig()
}

// NewApp creates a new application with default routes
func NewApp() (*Application, error) {
	return internal.NewApp()
}

// NewAppWithConfig creates a new application from cfg
func NewAppWithConfig(cfg *Config) (*Application, error) {
	return internal.NewAppWithConfig(cfg)
}

// MountRoutes mounts the referrer routes on an existing fiber app.
func MountRoutes(server *fiber.App, cfg *Config, engine *referrer.Engine, logger *slog.Logger) {
	internal.MountRoutes(server, cfg, engine, logger)
}

// LoadEngine builds a classification engine from an extensions file.
// An empty path returns the built-in engine.
func LoadEngine(path string, logger *slog.Logger) (*referrer.Engine, error) {
	return extensions.LoadEngine(path, logger)
}
