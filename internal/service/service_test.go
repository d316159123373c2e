package service

import (
	"fmt"
	"strings"
	"testing"

	"go-pos-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The shared cache
// keeps GORM's pooled connections pointed at the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Client{},
		&model.User{},
		&model.Transaction{},
		&model.TransactionItem{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, nome, cod string, qty, minQty int, price string) *model.Product {
	t.Helper()
	p := &model.Product{
		Nome:          nome,
		CodProduto:    cod,
		Quantidade:    qty,
		MinQuantidade: minQty,
		PrecoUnitario: decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
