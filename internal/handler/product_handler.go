package handler

import (
	"go-pos-api/internal/model"
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.InventoryService
}

func NewProductHandler(s service.InventoryService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts lists the catalog, optionally filtered by nome or codProduto
// GET /api/produtos
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.Query("nome"), c.Query("codProduto"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(products)
}

// CreateProduct handles product creation
// POST /api/produtos
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// UpdateProduct handles product updates
// PUT /api/produtos/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(productID, &product)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

// DeleteProduct removes a product
// DELETE /api/produtos/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(productID); err != nil {
		return mapServiceError(c, err)
	}

	return c.SendStatus(204)
}
