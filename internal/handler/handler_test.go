package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pos-api/internal/middleware"
	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/service"
	"go-pos-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	// Mirror the API process: monetary values as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// stubRenderer stands in for the headless Chrome pipeline.
type stubRenderer struct {
	calls int
}

func (s *stubRenderer) RenderHTML(_ context.Context, _ string) ([]byte, error) {
	s.calls++
	return []byte("%PDF-1.4 stub"), nil
}

// newTestApp wires the full route table over an isolated in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *stubRenderer) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Client{},
		&model.User{},
		&model.Transaction{},
		&model.TransactionItem{},
	))

	productRepo := repository.NewProductRepo(db)
	clientRepo := repository.NewClientRepo(db)
	userRepo := repository.NewUserRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	renderer := &stubRenderer{}

	productHandler := NewProductHandler(service.NewInventoryService(productRepo, nil))
	clientHandler := NewClientHandler(service.NewClientService(clientRepo))
	userHandler := NewUserHandler(service.NewUserService(userRepo))
	authHandler := NewAuthHandler(service.NewAuthService(userRepo))
	txHandler := NewTransactionHandler(service.NewTransactionService(productRepo, txRepo, db, nil))
	receiptHandler := NewReceiptHandler(service.NewReceiptService(txRepo, renderer))

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/auth", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth())
	protected.Get("/produtos", productHandler.GetProducts)
	protected.Post("/produtos", productHandler.CreateProduct)
	protected.Put("/produtos/:id", productHandler.UpdateProduct)
	protected.Delete("/produtos/:id", productHandler.DeleteProduct)
	for _, prefix := range []string{"/clientes", "/clients"} {
		protected.Get(prefix, clientHandler.GetClients)
		protected.Post(prefix, clientHandler.CreateClient)
		protected.Put(prefix+"/:id", clientHandler.UpdateClient)
		protected.Delete(prefix+"/:id", clientHandler.DeleteClient)
	}
	admin := protected.Group("", middleware.RequireAdmin())
	admin.Get("/users", userHandler.GetUsers)
	admin.Post("/users", userHandler.CreateUser)
	protected.Get("/transacoes", txHandler.GetTransactions)
	protected.Post("/transacoes", txHandler.CreateTransaction)
	protected.Get("/gerar_orcamento", receiptHandler.GenerateQuote)

	return app, db, renderer
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.GenerateToken(uuid.New(), "tester", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}
