package repository

import (
	"time"

	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionFilter narrows the listing query. Zero values are ignored.
// DataFim is inclusive: rows dated on the last day are still returned.
type TransactionFilter struct {
	ID         uuid.UUID
	Tipo       model.TransactionType
	DataInicio time.Time
	DataFim    time.Time
}

// DashboardStats is the overview block served by the dashboard endpoint.
type DashboardStats struct {
	TotalProdutos   int64           `json:"total_produtos"`
	EstoqueBaixo    int64           `json:"estoque_baixo"`
	ValorInventario decimal.Decimal `json:"valor_inventario"`
	Entradas        decimal.Decimal `json:"entradas"`
	Saidas          decimal.Decimal `json:"saidas"`
}

type TransactionRepository interface {
	Search(filter TransactionFilter) ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	GetDashboardStats(startDate, endDate time.Time) (*DashboardStats, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Search(filter TransactionFilter) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.Preload("Items").Preload("Cliente")

	if filter.ID != uuid.Nil {
		q = q.Where("id = ?", filter.ID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if !filter.DataInicio.IsZero() {
		q = q.Where("data >= ?", filter.DataInicio)
	}
	if !filter.DataFim.IsZero() {
		q = q.Where("data < ?", filter.DataFim.AddDate(0, 0, 1))
	}

	err := q.Order("data DESC, id DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Items").Preload("Cliente").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) GetDashboardStats(startDate, endDate time.Time) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProdutos).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("quantidade < min_quantidade").
		Count(&stats.EstoqueBaixo).Error; err != nil {
		return nil, err
	}

	var valuation decimal.NullDecimal
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantidade * preco_unitario), 0)").
		Scan(&valuation).Error; err != nil {
		return nil, err
	}
	stats.ValorInventario = valuation.Decimal

	// Entradas = entrada + venda amounts, Saidas = saida amounts in the window
	var entradas decimal.NullDecimal
	if err := r.db.Model(&model.Transaction{}).
		Where("tipo IN ? AND data BETWEEN ? AND ?", []model.TransactionType{model.TxEntrada, model.TxVenda}, startDate, endDate).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&entradas).Error; err != nil {
		return nil, err
	}
	stats.Entradas = entradas.Decimal

	var saidas decimal.NullDecimal
	if err := r.db.Model(&model.Transaction{}).
		Where("tipo = ? AND data BETWEEN ? AND ?", model.TxSaida, startDate, endDate).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&saidas).Error; err != nil {
		return nil, err
	}
	stats.Saidas = saidas.Decimal

	return &stats, nil
}
