package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// handleError writes err as a JSON body with a machine-readable code.
func handleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
			"code":  errorCode(err),
		})
	}

	return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Classification did not complete",
		"code":  errorCode(err),
	})
}
