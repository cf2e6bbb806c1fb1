package routes

import (
	"vipneus-backend/controllers"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupSaleRoutes configura as rotas de vendas
func SetupSaleRoutes(app *fiber.App, saleController *controllers.SaleController) {
	sales := app.Group("/sales", utils.AuthMiddleware)

	// POST /sales - registra a venda e marca o pneu como vendido
	sales.Post("/", saleController.CreateSale)

	// GET /sales - lista de vendas (mais recentes primeiro)
	sales.Get("/", saleController.GetSales)

	// GET /sales/:id - detalhe de uma venda
	sales.Get("/:id", saleController.GetSale)
}
