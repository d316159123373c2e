package handler

import (
	"testing"
	"time"

	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuoteEndpoint(t *testing.T) {
	app, db, renderer := newTestApp(t)
	token := bearerToken(t, model.RoleCommon)

	tx := &model.Transaction{
		Tipo:  model.TxVenda,
		Data:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Valor: decimal.RequireFromString("100.00"),
	}
	require.NoError(t, db.Create(tx).Error)

	resp := doJSON(t, app, "GET", "/api/gerar_orcamento?venda_id="+tx.ID.String(), token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), tx.ID.String())
	assert.Equal(t, 1, renderer.calls)
}

func TestGenerateQuoteUnknownTransaction(t *testing.T) {
	app, _, renderer := newTestApp(t)
	token := bearerToken(t, model.RoleCommon)

	resp := doJSON(t, app, "GET", "/api/gerar_orcamento?venda_id="+uuid.NewString(), token, nil)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Zero(t, renderer.calls, "missing transaction must never reach the renderer")
}

func TestGenerateQuoteMissingOrBadID(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := bearerToken(t, model.RoleCommon)

	resp := doJSON(t, app, "GET", "/api/gerar_orcamento", token, nil)
	assert.Equal(t, 400, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/gerar_orcamento?venda_id=abc", token, nil)
	assert.Equal(t, 400, resp.StatusCode)
}
