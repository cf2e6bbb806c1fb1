package routes

import (
	"vipneus-backend/controllers"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupPurchaseRoutes configura as rotas de compras
func SetupPurchaseRoutes(app *fiber.App, purchaseController *controllers.PurchaseController) {
	purchases := app.Group("/purchases", utils.AuthMiddleware)

	// POST /purchases - registra a compra e o pneu vinculado
	purchases.Post("/", purchaseController.CreatePurchase)

	// GET /purchases - lista de compras (mais recentes primeiro)
	purchases.Get("/", purchaseController.GetPurchases)

	// GET /purchases/:id - detalhe de uma compra
	purchases.Get("/:id", purchaseController.GetPurchase)

	// DELETE /purchases/:id - remove a compra e o pneu, se não vendido
	purchases.Delete("/:id", purchaseController.DeletePurchase)
}
