package repository

import (
	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll(nome string) ([]model.Client, error)
	FindByID(id uuid.UUID) (*model.Client, error)
	Update(client *model.Client) error
	Delete(id uuid.UUID) (int64, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepo) FindAll(nome string) ([]model.Client, error) {
	var clients []model.Client
	q := r.db.Order("nome ASC")
	if nome != "" {
		q = q.Where("nome LIKE ?", "%"+nome+"%")
	}
	err := q.Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByID(id uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, "id = ?", id).Error
	return &client, err
}

func (r *clientRepo) Update(client *model.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepo) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Client{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
