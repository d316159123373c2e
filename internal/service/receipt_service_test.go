package service

import (
	"context"
	"testing"
	"time"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records whether the print pipeline was ever invoked.
type fakeRenderer struct {
	calls int
	html  string
	err   error
}

func (f *fakeRenderer) RenderHTML(_ context.Context, html string) ([]byte, error) {
	f.calls++
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func TestGenerateQuoteUnknownIDNeverRenders(t *testing.T) {
	db := newTestDB(t)
	renderer := &fakeRenderer{}
	svc := NewReceiptService(repository.NewTransactionRepo(db), renderer)

	_, _, err := svc.GenerateQuote(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, renderer.calls, "render step must not launch for a missing transaction")
}

func TestGenerateQuoteRendersItemizedInvoice(t *testing.T) {
	db := newTestDB(t)
	renderer := &fakeRenderer{}
	txRepo := repository.NewTransactionRepo(db)
	svc := NewReceiptService(txRepo, renderer)

	client := &model.Client{Nome: "Maria Souza", CPFHash: model.HashCPF("12345678909")}
	require.NoError(t, db.Create(client).Error)

	transaction := &model.Transaction{
		Tipo:       model.TxVenda,
		Data:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalBruto: decimal.RequireFromString("110.00"),
		Desconto:   decimal.RequireFromString("10.00"),
		Valor:      decimal.RequireFromString("100.00"),
		ClienteID:  &client.ID,
		Items: []model.TransactionItem{
			{ProductID: uuid.New(), CodProduto: "M-01", Nome: "Mochila", Quantidade: 1,
				PrecoVenda: decimal.RequireFromString("80.00"), TotalItem: decimal.RequireFromString("80.00")},
			{ProductID: uuid.New(), CodProduto: "E-01", Nome: "Estojo", Quantidade: 2,
				PrecoVenda: decimal.RequireFromString("15.00"), TotalItem: decimal.RequireFromString("30.00")},
		},
	}
	require.NoError(t, db.Create(transaction).Error)

	pdfBytes, filename, err := svc.GenerateQuote(context.Background(), transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, renderer.calls)
	assert.NotEmpty(t, pdfBytes)
	assert.Contains(t, filename, transaction.ID.String())

	// The invoice carries letterhead, client, items, and totals
	assert.Contains(t, renderer.html, "Comercial Boa Venda")
	assert.Contains(t, renderer.html, "Maria Souza")
	assert.Contains(t, renderer.html, "Mochila")
	assert.Contains(t, renderer.html, "Estojo")
	assert.Contains(t, renderer.html, "110.00")
	assert.Contains(t, renderer.html, "10.00")
	assert.Contains(t, renderer.html, "100.00")
	assert.Contains(t, renderer.html, "10/03/2024")
}

func TestGenerateQuoteRenderFailure(t *testing.T) {
	db := newTestDB(t)
	renderer := &fakeRenderer{err: context.DeadlineExceeded}
	svc := NewReceiptService(repository.NewTransactionRepo(db), renderer)

	transaction := &model.Transaction{
		Tipo:  model.TxVenda,
		Data:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Valor: decimal.NewFromInt(10),
	}
	require.NoError(t, db.Create(transaction).Error)

	_, _, err := svc.GenerateQuote(context.Background(), transaction.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
