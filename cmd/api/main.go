package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Towaiji/InventoryPro/internal/handler"
	"github.com/Towaiji/InventoryPro/internal/middleware"
	"github.com/Towaiji/InventoryPro/internal/model"
	"github.com/Towaiji/InventoryPro/internal/repository"
	"github.com/Towaiji/InventoryPro/internal/service"
	"github.com/Towaiji/InventoryPro/internal/ws"
	"github.com/Towaiji/InventoryPro/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Store{}, &model.Category{}, &model.InventoryItem{})

	// 3. Category dedup policy: one shared taxonomy by default, per-user
	// scoping when CATEGORY_SCOPE=user.
	scope := model.ScopeGlobal
	if os.Getenv("CATEGORY_SCOPE") == string(model.ScopeUser) {
		scope = model.ScopeUser
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	storeRepo := repository.NewStoreRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)

	authService := service.NewAuthService(userRepo)
	storeService := service.NewStoreService(storeRepo)
	invService := service.NewInventoryService(inventoryRepo, storeRepo, categoryRepo, scope, wsHub, log)
	dashService := service.NewDashboardService(storeRepo, inventoryRepo)

	authHandler := handler.NewAuthHandler(authService, log)
	storeHandler := handler.NewStoreHandler(storeService, invService, log)
	invHandler := handler.NewInventoryHandler(invService, log)
	dashHandler := handler.NewDashboardHandler(dashService, log)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "InventoryPro API v1.0",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/signin", authHandler.SignIn)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/auth/signout", authHandler.SignOut)
	protected.Get("/auth/me", authHandler.Me)

	// Store Routes
	protected.Get("/stores", storeHandler.GetStores)
	protected.Post("/stores", storeHandler.CreateStore)
	protected.Put("/stores/:id", storeHandler.UpdateStore)
	protected.Delete("/stores/:id", storeHandler.DeleteStore)
	protected.Get("/stores/:id/inventory", storeHandler.GetStoreInventory)

	// Inventory Routes
	protected.Get("/inventory", invHandler.GetInventory)
	protected.Post("/inventory", invHandler.CreateItem)
	protected.Put("/inventory/:id", invHandler.UpdateItem)
	protected.Delete("/inventory/:id", invHandler.DeleteItem)
	protected.Get("/categories", invHandler.GetCategories)

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/stores", dashHandler.GetStoreStats)
	protected.Get("/dashboard/categories", dashHandler.GetCategoryStats)
	protected.Get("/dashboard/low-stock", dashHandler.GetLowStock)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}
