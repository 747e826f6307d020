// Package internal contains core application functionality
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/karloscodes/cartridge"
	cartridgemiddleware "github.com/karloscodes/cartridge/middleware"

	"refsource/internal/config"
	"refsource/internal/extensions"
	"refsource/pkg/referrer"
)

// Application bundles the HTTP server with its configuration and classifier engine
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	Engine *referrer.Engine
	Server *fiber.App
}

// NewApp creates a new application instance with default settings
func NewApp() (*Application, error) {
	return NewAppWithConfig(config.GetConfig())
}

// NewAppWithConfig creates a new application with the provided config
func NewAppWithConfig(cfg *config.Config) (*Application, error) {
	logger := cartridge.NewLogger(cfg, nil)
	return NewAppWithLogger(cfg, logger)
}

// NewAppWithLogger creates a new application with the provided config and logger
func NewAppWithLogger(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	engine, err := extensions.LoadEngine(cfg.ExtensionsFile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load extensions: %w", err)
	}

	server := fiber.New(fiber.Config{
		AppName:               cfg.GetAppName(),
		DisableStartupMessage: !cfg.IsDevelopment(),
		ErrorHandler:          errorHandler(logger),
	})
	server.Use(requestid.New())
	server.Use(cartridgemiddleware.Recover())
	server.Use(cartridgemiddleware.RequestLogger(logger))
	MountRoutes(server, cfg, engine, logger)

	return &Application{
		Config: cfg,
		Logger: logger,
		Engine: engine,
		Server: server,
	}, nil
}

// errorHandler renders unhandled errors as JSON
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.Any("error", err))
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}

// StartAsync starts listening on the configured port in the background.
// Errors after the listener is bound are logged.
func (a *Application) StartAsync() error {
	ln, err := net.Listen("tcp", ":"+a.Config.GetPort())
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", a.Config.GetPort(), err)
	}

	a.Logger.Info("Server listening",
		slog.String("addr", ln.Addr().String()),
		slog.String("environment", a.Config.Environment),
		slog.String("domain", a.Config.Domain))

	go func() {
		if err := a.Server.Listener(ln); err != nil {
			a.Logger.Error("Server stopped", slog.Any("error", err))
		}
	}()
	return nil
}

// Shutdown gracefully stops the HTTP server
func (a *Application) Shutdown(ctx context.Context) error {
	return a.Server.ShutdownWithContext(ctx)
}
