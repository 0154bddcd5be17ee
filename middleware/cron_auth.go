package middleware

import (
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
)

// CronAuth guards the /cron endpoints with the shared secret the
// external scheduler sends in X-Cron-Secret. Rejected requests cause no
// processing at all.
func CronAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := os.Getenv("CRON_SECRET")
		provided := c.Get("X-Cron-Secret")
		if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(provided)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid cron secret",
			})
		}
		return c.Next()
	}
}
