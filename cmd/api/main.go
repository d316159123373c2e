package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-api/internal/handler"
	"go-pos-api/internal/middleware"
	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/service"
	"go-pos-api/internal/ws"
	"go-pos-api/pkg/database"
	"go-pos-api/pkg/pdf"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Monetary values serialize as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Product{},
		&model.Client{},
		&model.User{},
		&model.Transaction{},
		&model.TransactionItem{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	clientRepo := repository.NewClientRepo(db)
	userRepo := repository.NewUserRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	invService := service.NewInventoryService(productRepo, wsHub)
	clientService := service.NewClientService(clientRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo)
	txService := service.NewTransactionService(productRepo, txRepo, db, wsHub)
	dashService := service.NewDashboardService(txRepo)
	receiptService := service.NewReceiptService(txRepo, pdf.NewChromeRenderer())

	productHandler := handler.NewProductHandler(invService)
	clientHandler := handler.NewClientHandler(clientService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	txHandler := handler.NewTransactionHandler(txService)
	dashHandler := handler.NewDashboardHandler(dashService)
	receiptHandler := handler.NewReceiptHandler(receiptService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "PDV Boa Venda v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	// Product Routes
	protected.Get("/produtos", productHandler.GetProducts)
	protected.Post("/produtos", productHandler.CreateProduct)
	protected.Put("/produtos/:id", productHandler.UpdateProduct)
	protected.Delete("/produtos/:id", productHandler.DeleteProduct)

	// Client Routes: /clientes plus the legacy /clients alias, one entity behind both
	for _, prefix := range []string{"/clientes", "/clients"} {
		protected.Get(prefix, clientHandler.GetClients)
		protected.Post(prefix, clientHandler.CreateClient)
		protected.Put(prefix+"/:id", clientHandler.UpdateClient)
		protected.Delete(prefix+"/:id", clientHandler.DeleteClient)
	}

	// User Management Routes (admin only)
	admin := protected.Group("", middleware.RequireAdmin())
	admin.Get("/users", userHandler.GetUsers)
	admin.Post("/users", userHandler.CreateUser)
	admin.Put("/users/:id", userHandler.UpdateUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)

	// Transaction Routes
	protected.Get("/transacoes", txHandler.GetTransactions)
	protected.Post("/transacoes", txHandler.CreateTransaction)

	// Receipt / quote PDF
	protected.Get("/gerar_orcamento", receiptHandler.GenerateQuote)

	// Dashboard
	protected.Get("/dashboard", dashHandler.GetDashboardStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if no admin exists yet
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Username: username,
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", username)
	}
}
