package service

import (
	"testing"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInventoryService(t *testing.T) (InventoryService, *gorm.DB) {
	db := newTestDB(t)
	return NewInventoryService(repository.NewProductRepo(db), nil), db
}

func TestCreateProductRoundTrip(t *testing.T) {
	svc, db := newInventoryService(t)

	req := &model.Product{
		Nome:          "Caderno 96 folhas",
		CodProduto:    "CAD-96",
		Quantidade:    25,
		MinQuantidade: 5,
		PrecoUnitario: decimal.RequireFromString("18.90"),
	}
	require.NoError(t, svc.CreateProduct(req))

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, 25, stored.Quantidade)
	assert.Equal(t, 5, stored.MinQuantidade)
	assert.Equal(t, "18.90", stored.PrecoUnitario.StringFixed(2))
}

func TestCreateProductDuplicateCode(t *testing.T) {
	svc, _ := newInventoryService(t)

	require.NoError(t, svc.CreateProduct(&model.Product{
		Nome: "Caderno", CodProduto: "CAD-96", PrecoUnitario: decimal.NewFromInt(10),
	}))

	err := svc.CreateProduct(&model.Product{
		Nome: "Outro Caderno", CodProduto: "CAD-96", PrecoUnitario: decimal.NewFromInt(12),
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newInventoryService(t)

	assert.ErrorIs(t, svc.CreateProduct(&model.Product{CodProduto: "X"}), ErrValidation)
	assert.ErrorIs(t, svc.CreateProduct(&model.Product{Nome: "X"}), ErrValidation)
	assert.ErrorIs(t, svc.CreateProduct(&model.Product{
		Nome: "X", CodProduto: "X-1", PrecoUnitario: decimal.NewFromInt(-1),
	}), ErrValidation)
	assert.ErrorIs(t, svc.CreateProduct(&model.Product{
		Nome: "X", CodProduto: "X-1", Quantidade: -3,
	}), ErrValidation)
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := newInventoryService(t)

	req := &model.Product{Nome: "Caderno", CodProduto: "CAD-96", Quantidade: 5, PrecoUnitario: decimal.NewFromInt(10)}
	require.NoError(t, svc.CreateProduct(req))

	req.Nome = "Caderno Capa Dura"
	req.Quantidade = 8
	updated, err := svc.UpdateProduct(req.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Caderno Capa Dura", updated.Nome)
	assert.Equal(t, 8, updated.Quantidade)

	_, err = svc.UpdateProduct(uuid.New(), req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newInventoryService(t)

	req := &model.Product{Nome: "Caderno", CodProduto: "CAD-96", PrecoUnitario: decimal.NewFromInt(10)}
	require.NoError(t, svc.CreateProduct(req))

	require.NoError(t, svc.DeleteProduct(req.ID))
	assert.ErrorIs(t, svc.DeleteProduct(req.ID), ErrNotFound)
}

func TestGetProductsFilters(t *testing.T) {
	svc, _ := newInventoryService(t)

	require.NoError(t, svc.CreateProduct(&model.Product{Nome: "Caderno", CodProduto: "CAD-96", PrecoUnitario: decimal.NewFromInt(10)}))
	require.NoError(t, svc.CreateProduct(&model.Product{Nome: "Caneta Azul", CodProduto: "CAN-01", PrecoUnitario: decimal.NewFromInt(3)}))

	all, err := svc.GetProducts("", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := svc.GetProducts("Caneta", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "CAN-01", byName[0].CodProduto)

	byCode, err := svc.GetProducts("", "CAD-96")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "Caderno", byCode[0].Nome)
}
