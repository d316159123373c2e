package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReceiptHandler struct {
	service service.ReceiptService
}

func NewReceiptHandler(s service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{service: s}
}

// GenerateQuote streams the transaction's quote as a PDF attachment
// GET /api/gerar_orcamento?venda_id=<id>
func (h *ReceiptHandler) GenerateQuote(c *fiber.Ctx) error {
	raw := c.Query("venda_id")
	if raw == "" {
		return c.Status(400).JSON(fiber.Map{"error": "venda_id is required"})
	}

	transactionID, err := parseUUID(raw)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid venda_id"})
	}

	pdfBytes, filename, err := h.service.GenerateQuote(c.UserContext(), transactionID)
	if err != nil {
		return mapServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
