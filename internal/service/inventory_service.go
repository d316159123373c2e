package service

import (
	"errors"
	"fmt"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/ws"
	"go-pos-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProducts(nome, codProduto string) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		wsHub:       hub,
	}
}

func validateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if req.PrecoUnitario.IsNegative() {
		return fmt.Errorf("%w: precoUnitario must not be negative", ErrValidation)
	}
	return nil
}

func (s *inventoryService) CreateProduct(req *model.Product) error {
	if err := validateProduct(req); err != nil {
		return err
	}

	// Duplicate check up front for a friendly message; the unique index still
	// backs it under concurrent creates.
	existing, _ := s.productRepo.FindByCode(req.CodProduto)
	if existing != nil && existing.ID != uuid.Nil {
		return fmt.Errorf("%w: codProduto '%s'", ErrDuplicate, req.CodProduto)
	}

	if err := s.productRepo.Create(req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: codProduto '%s'", ErrDuplicate, req.CodProduto)
		}
		return err
	}

	s.broadcastStock("product_created", req)
	return nil
}

func (s *inventoryService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}

	existing.Nome = req.Nome
	existing.CodProduto = req.CodProduto
	existing.Quantidade = req.Quantidade
	existing.MinQuantidade = req.MinQuantidade
	existing.PrecoUnitario = req.PrecoUnitario

	if err := validateProduct(existing); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: codProduto '%s'", ErrDuplicate, req.CodProduto)
		}
		return nil, err
	}

	s.broadcastStock("product_updated", existing)
	return existing, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID) error {
	affected, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return nil
}

func (s *inventoryService) GetProducts(nome, codProduto string) ([]model.Product, error) {
	return s.productRepo.FindAll(nome, codProduto)
}

func (s *inventoryService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) broadcastStock(action string, product *model.Product) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": action,
		"product": map[string]interface{}{
			"id":            product.ID,
			"codProduto":    product.CodProduto,
			"nome":          product.Nome,
			"quantidade":    product.Quantidade,
			"minQuantidade": product.MinQuantidade,
			"estoqueBaixo":  product.EstoqueBaixo(),
		},
	})
}
