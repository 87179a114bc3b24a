package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"planilla-api/pkg/token"
)

// AuthMiddleware gates protected routes behind a bearer token. Every
// branch either sends a terminal response or forwards to the next
// handler; a request is never both answered and forwarded.
func AuthMiddleware(maker *token.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Access denied, no token provided."})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authorization header format must be Bearer <token>"})
		}

		claims, err := maker.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Invalid token."})
		}

		c.Locals("user", claims)

		return c.Next()
	}
}
