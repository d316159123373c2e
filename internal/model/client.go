package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Client is the unified client record. The raw CPF is never persisted, only
// its deterministic one-way hash, which also carries the uniqueness constraint.
type Client struct {
	BaseModel
	Nome     string `gorm:"type:varchar(255);not null" json:"nome" validate:"required"`
	Telefone string `gorm:"type:varchar(20)" json:"telefone"`
	Endereco string `gorm:"type:varchar(255)" json:"endereco"`
	CPFHash  string `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
}

func (Client) TableName() string { return "clientes" }

// HashCPF normalizes the identifier (digits only) and returns its SHA-256 hex digest.
func HashCPF(cpf string) string {
	var digits strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	sum := sha256.Sum256([]byte(digits.String()))
	return hex.EncodeToString(sum[:])
}
