package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"refsource/internal/options"
	"refsource/pkg/referrer"
)

// OptionsIndexAction returns the option lists localized for the request's
// Accept-Language header.
func OptionsIndexAction(engine *referrer.Engine, defaultLanguage string, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag := options.MatchLanguage(c.Get(fiber.HeaderAcceptLanguage), defaultLanguage)
		logger.Debug("Serving option lists", slog.String("language", tag.String()))

		c.Vary(fiber.HeaderAcceptLanguage)
		return c.JSON(options.All(engine, tag))
	}
}
