package handler

import (
	"errors"
	"log"

	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// mapServiceError translates service sentinels onto the HTTP error taxonomy.
// Anything unrecognized is logged and collapsed into a generic 500.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInsufficientStock):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicate):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Println("internal error:", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// Helper to parse UUID path/query values
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
