package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Nome          string          `gorm:"type:varchar(255);not null" json:"nome" validate:"required"`
	CodProduto    string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"codProduto" validate:"required"`
	Quantidade    int             `gorm:"not null;default:0" json:"quantidade" validate:"gte=0"`
	MinQuantidade int             `gorm:"not null;default:0" json:"minQuantidade" validate:"gte=0"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precoUnitario"`
}

func (Product) TableName() string { return "produtos" }

// EstoqueBaixo reports whether the product is below its configured minimum
func (p *Product) EstoqueBaixo() bool {
	return p.Quantidade < p.MinQuantidade
}
