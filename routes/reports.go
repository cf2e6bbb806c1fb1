package routes

import (
	"vipneus-backend/controllers"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes configura as rotas de relatórios
func SetupReportRoutes(app *fiber.App, reportController *controllers.ReportController) {
	reports := app.Group("/reports", utils.AuthMiddleware)

	// GET /reports/months - meses com movimento
	reports.Get("/months", reportController.GetAvailableMonths)

	// GET /reports/monthly/:month - relatório detalhado do mês (YYYY-MM)
	reports.Get("/monthly/:month", reportController.GetMonthlyReport)
}
