package middleware

import (
	"strings"

	"go-pos-api/internal/model"
	"go-pos-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the Bearer JWT and sets user info in the context
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Set user info in context for downstream handlers
		c.Locals("user_id", claims.UserID.String())
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequireAdmin rejects callers whose verified token does not carry the admin
// role. The role comes from the signed claims, never from a client header.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != model.RoleAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires admin role"})
		}
		return c.Next()
	}
}
