package routes

import (
	"vipneus-backend/controllers"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes configura as rotas do dashboard
func SetupDashboardRoutes(app *fiber.App, dashboardController *controllers.DashboardController) {
	dashboard := app.Group("/dashboard", utils.AuthMiddleware)

	// GET /dashboard - dados consolidados do usuário
	dashboard.Get("/", dashboardController.GetDashboard)
}
