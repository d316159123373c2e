package repository

import (
	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(nome, codProduto string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCode(codProduto string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) (int64, error)
	DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(nome, codProduto string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Order("nome ASC")
	if nome != "" {
		q = q.Where("nome LIKE ?", "%"+nome+"%")
	}
	if codProduto != "" {
		q = q.Where("cod_produto = ?", codProduto)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByCode(codProduto string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "cod_produto = ?", codProduto).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// DecrementStock runs a conditional decrement inside the caller's transaction.
// The quantity floor is enforced in SQL: zero rows affected means the product
// is missing or has insufficient stock, and the caller must abort.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND quantidade >= ?", id, quantity).
		UpdateColumn("quantidade", gorm.Expr("quantidade - ?", quantity))
	return res.RowsAffected, res.Error
}
