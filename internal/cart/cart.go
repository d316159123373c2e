// Package cart is the server-side sale builder. It replaces the old
// browser-local cart: state lives in an explicit Cart value scoped to one
// sale session, stock is only ever checked against the server's product
// rows, and nothing is persisted until the transaction endpoint commits.
package cart

import (
	"errors"
	"fmt"
	"time"

	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuantityInvalid  = errors.New("quantity must be greater than zero")
	ErrExceedsStock     = errors.New("quantity exceeds available stock")
	ErrEmptyCart        = errors.New("cart has no items")
	ErrDiscountNegative = errors.New("discount must not be negative")
	ErrItemNotFound     = errors.New("item not in cart")
)

// Line is one product entry in the cart. Repeated additions of the same
// product merge into a single line.
type Line struct {
	ProductID     uuid.UUID
	CodProduto    string
	Nome          string
	Quantidade    int
	PrecoOriginal decimal.Decimal
	PrecoVenda    decimal.Decimal
	Total         decimal.Decimal
}

// Cart accumulates sale lines keyed by product id.
type Cart struct {
	lines    map[uuid.UUID]*Line
	order    []uuid.UUID
	desconto decimal.Decimal
}

func New() *Cart {
	return &Cart{lines: make(map[uuid.UUID]*Line)}
}

// AddItem merges qty of the product into the cart at the given sale price.
// A zero salePrice means "sell at catalog price". The merged quantity is
// validated against the product's current stock.
func (c *Cart) AddItem(product *model.Product, qty int, salePrice decimal.Decimal) error {
	if qty <= 0 {
		return ErrQuantityInvalid
	}
	if salePrice.IsZero() {
		salePrice = product.PrecoUnitario
	}

	merged := qty
	if line, ok := c.lines[product.ID]; ok {
		merged += line.Quantidade
	}
	if merged > product.Quantidade {
		return fmt.Errorf("%w: '%s' has %d in stock, wanted %d",
			ErrExceedsStock, product.Nome, product.Quantidade, merged)
	}

	line, ok := c.lines[product.ID]
	if !ok {
		line = &Line{
			ProductID:     product.ID,
			CodProduto:    product.CodProduto,
			Nome:          product.Nome,
			PrecoOriginal: product.PrecoUnitario,
		}
		c.lines[product.ID] = line
		c.order = append(c.order, product.ID)
	}
	line.Quantidade = merged
	line.PrecoVenda = salePrice
	line.Total = salePrice.Mul(decimal.NewFromInt(int64(merged)))
	return nil
}

// RemoveItem drops a product line entirely.
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	if _, ok := c.lines[productID]; !ok {
		return ErrItemNotFound
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetDiscount applies a flat discount to the sale total.
func (c *Cart) SetDiscount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrDiscountNegative
	}
	c.desconto = d
	return nil
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Volume is the total unit count across all lines.
func (c *Cart) Volume() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantidade
	}
	return total
}

// Subtotal is the gross total before discount.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total)
	}
	return total
}

// Total is the sale amount after the flat discount, clamped at zero.
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.desconto)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Finalize emits the transaction payload for the authoritative transaction
// endpoint and resets all cart state. The server-side commit is the only
// place stock is actually decremented.
func (c *Cart) Finalize(clienteID *uuid.UUID, descricao string) (*model.Transaction, error) {
	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}

	transaction := &model.Transaction{
		Tipo:       model.TxVenda,
		Descricao:  descricao,
		Data:       time.Now(),
		TotalBruto: c.Subtotal(),
		Desconto:   c.desconto,
		Valor:      c.Total(),
		ClienteID:  clienteID,
	}
	for _, id := range c.order {
		line := c.lines[id]
		transaction.Items = append(transaction.Items, model.TransactionItem{
			ProductID:     line.ProductID,
			CodProduto:    line.CodProduto,
			Nome:          line.Nome,
			Quantidade:    line.Quantidade,
			PrecoOriginal: line.PrecoOriginal,
			PrecoVenda:    line.PrecoVenda,
			TotalItem:     line.Total,
		})
	}

	c.lines = make(map[uuid.UUID]*Line)
	c.order = nil
	c.desconto = decimal.Zero
	return transaction, nil
}
