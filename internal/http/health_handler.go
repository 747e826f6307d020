package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"refsource/pkg/referrer"
)

// HealthStatus represents the health check response
type HealthStatus struct {
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	SearchEngines   int       `json:"search_engines"`
	SocialPlatforms int       `json:"social_platforms"`
}

// HealthIndexAction handles the health check endpoint
func HealthIndexAction(engine *referrer.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := HealthStatus{
			Status:          "ok",
			Timestamp:       time.Now(),
			SearchEngines:   engine.SearchEngines().Len(),
			SocialPlatforms: engine.SocialPlatforms().Len(),
		}

		if health.SearchEngines == 0 || health.SocialPlatforms == 0 {
			health.Status = "degraded"
		}

		return c.JSON(health)
	}
}
