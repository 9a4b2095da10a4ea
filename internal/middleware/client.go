package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// EnsureClientID requires every request to carry a client identifier, via
// the X-Client-ID header or a clientId query parameter. The ID keys
// WebSocket connection registration and request logs; the service itself
// has no accounts or players.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Client ID is required. Send X-Client-ID or clientId.",
			})
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
