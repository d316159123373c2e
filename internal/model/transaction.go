package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxEntrada TransactionType = "entrada"
	TxSaida   TransactionType = "saida"
	TxVenda   TransactionType = "venda"
)

// Transaction is the header row of a cash movement or sale.
// Sales carry child Items; plain entries/exits do not.
type Transaction struct {
	BaseModel
	Tipo       TransactionType `gorm:"type:varchar(10);not null;index" json:"tipo" validate:"required,oneof=entrada saida venda"`
	Descricao  string          `gorm:"type:text" json:"descricao"`
	Valor      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Data       time.Time       `gorm:"type:date;not null;index" json:"data" validate:"required"`
	TotalBruto decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalBruto"`
	Desconto   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"desconto"`

	ClienteID *uuid.UUID `gorm:"type:uuid;index" json:"clienteId,omitempty"`
	Cliente   *Client    `gorm:"foreignKey:ClienteID" json:"cliente,omitempty" validate:"-"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"itens,omitempty" validate:"omitempty,dive"`
}

func (Transaction) TableName() string { return "transacoes" }

// TransactionItem is one product-quantity-price line within a sale.
// Product name and code are snapshotted at insert time.
type TransactionItem struct {
	BaseModel
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"transactionId"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null" json:"productId" validate:"uuid_required"`
	CodProduto    string          `gorm:"type:varchar(50)" json:"codProduto"`
	Nome          string          `gorm:"type:varchar(255)" json:"nome"`
	Quantidade    int             `gorm:"not null" json:"quantidade" validate:"required,gt=0"`
	PrecoOriginal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precoOriginal"`
	PrecoVenda    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precoVenda"`
	TotalItem     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalItem"`
}

func (TransactionItem) TableName() string { return "transacao_itens" }
