package routes

import (
	"vipneus-backend/controllers"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupTireRoutes configura as rotas do estoque de pneus
func SetupTireRoutes(app *fiber.App, tireController *controllers.TireController) {
	tires := app.Group("/tires", utils.AuthMiddleware)

	// POST /tires - cadastro manual de pneu
	tires.Post("/", tireController.CreateTire)

	// GET /tires/available - pneus disponíveis com filtros
	// (precisa vir antes da rota parametrizada /:id)
	tires.Get("/available", tireController.GetAvailableTires)

	// GET /tires - lista de pneus
	tires.Get("/", tireController.GetTires)

	// GET /tires/:id - detalhe de um pneu
	tires.Get("/:id", tireController.GetTire)

	// PUT /tires/:id - atualização parcial
	tires.Put("/:id", tireController.UpdateTire)

	// DELETE /tires/:id - remoção
	tires.Delete("/:id", tireController.DeleteTire)
}
