package handler

import (
	"time"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransaction records an entry, exit, or sale with line items
// POST /api/transacoes
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var transaction model.Transaction
	if err := c.BodyParser(&transaction); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordTransaction(&transaction); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": transaction})
}

// GetTransactions lists transactions with optional filters
// GET /api/transacoes?dataInicio=&dataFim=&tipo=&transactionId=
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	var filter repository.TransactionFilter

	if raw := c.Query("transactionId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid transactionId"})
		}
		filter.ID = id
	}
	if tipo := c.Query("tipo"); tipo != "" {
		switch model.TransactionType(tipo) {
		case model.TxEntrada, model.TxSaida, model.TxVenda:
			filter.Tipo = model.TransactionType(tipo)
		default:
			return c.Status(400).JSON(fiber.Map{"error": "tipo must be 'entrada', 'saida' or 'venda'"})
		}
	}
	if raw := c.Query("dataInicio"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "dataInicio must be YYYY-MM-DD"})
		}
		filter.DataInicio = t
	}
	if raw := c.Query("dataFim"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "dataFim must be YYYY-MM-DD"})
		}
		filter.DataFim = t
	}

	transactions, err := h.service.GetTransactions(filter)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(transactions)
}
