package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/pkg/pdf"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fixed company letterhead printed on every quote.
const (
	companyName    = "Comercial Boa Venda LTDA"
	companyAddress = "Rua das Laranjeiras, 120 - Centro"
	companyPhone   = "(11) 4002-8922"
)

const quoteTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; margin: 40px; }
  .letterhead { border-bottom: 2px solid #333; padding-bottom: 10px; margin-bottom: 20px; }
  .letterhead h1 { margin: 0; font-size: 20px; }
  .letterhead p { margin: 2px 0; color: #555; }
  table { width: 100%; border-collapse: collapse; margin-top: 15px; }
  th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
  th { background: #f0f0f0; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 20px; width: 280px; margin-left: auto; }
  .totals td { border: none; padding: 3px 8px; }
  .totals tr.total td { border-top: 2px solid #333; font-weight: bold; }
</style>
</head>
<body>
  <div class="letterhead">
    <h1>{{.Empresa}}</h1>
    <p>{{.Endereco}}</p>
    <p>{{.Telefone}}</p>
  </div>

  <h2>Orçamento Nº {{.Numero}}</h2>
  <p>Data: {{.Data}}</p>
  {{if .Cliente}}<p>Cliente: {{.Cliente}}</p>{{end}}

  <table>
    <tr>
      <th>Código</th><th>Produto</th><th class="num">Qtd</th>
      <th class="num">Preço Unit.</th><th class="num">Total</th>
    </tr>
    {{range .Itens}}
    <tr>
      <td>{{.CodProduto}}</td><td>{{.Nome}}</td><td class="num">{{.Quantidade}}</td>
      <td class="num">R$ {{.PrecoVenda}}</td><td class="num">R$ {{.Total}}</td>
    </tr>
    {{end}}
  </table>

  <table class="totals">
    <tr><td>Subtotal</td><td class="num">R$ {{.Subtotal}}</td></tr>
    <tr><td>Desconto</td><td class="num">R$ {{.Desconto}}</td></tr>
    <tr class="total"><td>Total</td><td class="num">R$ {{.Total}}</td></tr>
  </table>
</body>
</html>`

var quoteTmpl = template.Must(template.New("quote").Parse(quoteTemplate))

type quoteLine struct {
	CodProduto string
	Nome       string
	Quantidade int
	PrecoVenda string
	Total      string
}

type quoteData struct {
	Empresa  string
	Endereco string
	Telefone string
	Numero   string
	Data     string
	Cliente  string
	Itens    []quoteLine
	Subtotal string
	Desconto string
	Total    string
}

type ReceiptService interface {
	GenerateQuote(ctx context.Context, transactionID uuid.UUID) ([]byte, string, error)
}

type receiptService struct {
	transactionRepo repository.TransactionRepository
	renderer        pdf.Renderer
}

func NewReceiptService(tRepo repository.TransactionRepository, renderer pdf.Renderer) ReceiptService {
	return &receiptService{
		transactionRepo: tRepo,
		renderer:        renderer,
	}
}

// GenerateQuote renders the transaction as a PDF quote and returns the bytes
// plus a suggested filename. The lookup happens before any render work so an
// unknown id never launches the browser.
func (s *receiptService) GenerateQuote(ctx context.Context, transactionID uuid.UUID) ([]byte, string, error) {
	transaction, err := s.transactionRepo.FindByID(transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
		}
		return nil, "", err
	}

	html, err := buildQuoteHTML(transaction)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err := s.renderer.RenderHTML(ctx, html)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("orcamento-%s.pdf", transactionID)
	return pdfBytes, filename, nil
}

func buildQuoteHTML(transaction *model.Transaction) (string, error) {
	data := quoteData{
		Empresa:  companyName,
		Endereco: companyAddress,
		Telefone: companyPhone,
		Numero:   transaction.ID.String(),
		Data:     transaction.Data.Format("02/01/2006"),
		Subtotal: transaction.TotalBruto.StringFixed(2),
		Desconto: transaction.Desconto.StringFixed(2),
		Total:    transaction.Valor.StringFixed(2),
	}
	if transaction.Cliente != nil {
		data.Cliente = transaction.Cliente.Nome
	}
	for _, item := range transaction.Items {
		data.Itens = append(data.Itens, quoteLine{
			CodProduto: item.CodProduto,
			Nome:       item.Nome,
			Quantidade: item.Quantidade,
			PrecoVenda: item.PrecoVenda.StringFixed(2),
			Total:      item.TotalItem.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := quoteTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
