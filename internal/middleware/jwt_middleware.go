package middleware

import (
	"strings"

	"toko-admin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const userIDKey = "user_id"

// AuthRequired is a Fiber middleware to check for a valid JWT token. Every
// failure answers 401 "Unauthorized" as plain text.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		userID, err := authService.UserIDFromToken(parts[1])
		if err != nil {
			logrus.WithError(err).WithField("path", c.Path()).Debug("rejected bearer token")
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user of the request, or "" when
// AuthRequired did not run.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}
