package service

import (
	"errors"
	"fmt"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/ws"
	"go-pos-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionService interface {
	RecordTransaction(req *model.Transaction) error
	GetTransactions(filter repository.TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(id uuid.UUID) (*model.Transaction, error)
}

type transactionService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewTransactionService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) TransactionService {
	return &transactionService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

// RecordTransaction persists the header, its line items, and the stock
// decrements as one atomic unit. Any failure rolls everything back.
func (s *transactionService) RecordTransaction(req *model.Transaction) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if req.Desconto.IsNegative() {
		return fmt.Errorf("%w: desconto must not be negative", ErrValidation)
	}
	if len(req.Items) > 0 && req.Tipo != model.TxVenda {
		return fmt.Errorf("%w: line items are only allowed on tipo 'venda'", ErrValidation)
	}
	if len(req.Items) == 0 && req.Valor.IsZero() {
		return fmt.Errorf("%w: valor is required", ErrValidation)
	}

	touched := make([]uuid.UUID, 0, len(req.Items))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.ClienteID != nil {
			var client model.Client
			if err := tx.First(&client, "id = ?", *req.ClienteID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: unknown client %s", ErrValidation, *req.ClienteID)
				}
				return err
			}
		}

		if len(req.Items) > 0 {
			gross := decimal.Zero
			for i := range req.Items {
				item := &req.Items[i]

				var product model.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: unknown product %s", ErrValidation, item.ProductID)
					}
					return err
				}

				// Snapshot product identity and pricing at insert time
				item.CodProduto = product.CodProduto
				item.Nome = product.Nome
				item.PrecoOriginal = product.PrecoUnitario
				if item.PrecoVenda.IsZero() {
					item.PrecoVenda = product.PrecoUnitario
				}
				item.TotalItem = item.PrecoVenda.Mul(decimal.NewFromInt(int64(item.Quantidade)))
				gross = gross.Add(item.TotalItem)

				// Conditional decrement, floored at zero. Zero rows affected
				// means a concurrent sale got there first: abort the whole batch.
				affected, err := s.productRepo.DecrementStock(tx, item.ProductID, item.Quantidade)
				if err != nil {
					return err
				}
				if affected == 0 {
					return fmt.Errorf("%w: product '%s'", ErrInsufficientStock, product.Nome)
				}
				touched = append(touched, item.ProductID)
			}

			req.TotalBruto = gross
			req.Valor = gross.Sub(req.Desconto)
			if req.Valor.IsNegative() {
				req.Valor = decimal.Zero
			}
		} else {
			req.TotalBruto = req.Valor
		}

		return tx.Create(req).Error
	})

	if err != nil {
		return err
	}

	s.notifyStockChanges(touched)
	return nil
}

func (s *transactionService) GetTransactions(filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.Search(filter)
}

func (s *transactionService) GetTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, id)
		}
		return nil, err
	}
	return transaction, nil
}

// notifyStockChanges pushes post-commit stock levels to connected clients and
// flags products that dropped below their minimum.
func (s *transactionService) notifyStockChanges(productIDs []uuid.UUID) {
	if s.wsHub == nil || len(productIDs) == 0 {
		return
	}
	go func() {
		for _, id := range productIDs {
			product, err := s.productRepo.FindByID(id)
			if err != nil {
				continue
			}
			payload := map[string]interface{}{
				"type":   "stock_update",
				"action": "sale_recorded",
				"product": map[string]interface{}{
					"id":            product.ID,
					"codProduto":    product.CodProduto,
					"nome":          product.Nome,
					"quantidade":    product.Quantidade,
					"minQuantidade": product.MinQuantidade,
				},
			}
			if product.EstoqueBaixo() {
				payload["type"] = "low_stock"
				payload["message"] = fmt.Sprintf("'%s' is below its minimum stock (%d < %d)",
					product.Nome, product.Quantidade, product.MinQuantidade)
			}
			s.wsHub.BroadcastJSON(payload)
		}
	}()
}
