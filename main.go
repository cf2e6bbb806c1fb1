package main

import (
	"log"
	"os"

	"vipneus-backend/controllers"
	"vipneus-backend/models"
	"vipneus-backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Inicialização do banco de dados
	db, err := models.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Automigração
	db.AutoMigrate(&models.User{}, &models.Purchase{}, &models.Tire{}, &models.Sale{})

	// Criação da aplicação Fiber
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"code":    code,
			})
		},
	})

	// Middleware
	app.Use(logger.New())

	// CORS
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:8080,http://127.0.0.1:8080"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Inicialização dos controladores
	authController := controllers.NewAuthController(db)
	tireController := controllers.NewTireController(db)
	purchaseController := controllers.NewPurchaseController(db)
	saleController := controllers.NewSaleController(db)
	dashboardController := controllers.NewDashboardController(db)
	reportController := controllers.NewReportController(db)

	// Configuração das rotas
	routes.SetupAuthRoutes(app, authController)
	routes.SetupTireRoutes(app, tireController)
	routes.SetupPurchaseRoutes(app, purchaseController)
	routes.SetupSaleRoutes(app, saleController)
	routes.SetupDashboardRoutes(app, dashboardController)
	routes.SetupReportRoutes(app, reportController)

	// Endpoints básicos
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API Gestão de Pneus",
			"version": "1.0.0",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Porta do servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
