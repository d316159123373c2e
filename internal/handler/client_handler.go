package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler serves both /api/clientes and the legacy /api/clients alias
// over the unified client entity.
type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

// GetClients lists clients, optionally filtered by nome
func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.service.GetClients(c.Query("nome"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(clients)
}

// CreateClient registers a client. The raw CPF is hashed before anything
// touches the database and never appears in the response.
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var input service.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.CreateClient(&input)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Client created", "data": client})
}

// UpdateClient updates a client's record
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	clientID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var input service.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.UpdateClient(clientID, &input)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Client updated", "data": client})
}

// DeleteClient removes a client
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	clientID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	if err := h.service.DeleteClient(clientID); err != nil {
		return mapServiceError(c, err)
	}

	return c.SendStatus(204)
}
