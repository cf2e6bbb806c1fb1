package routes

import (
	"vipneus-backend/controllers"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes configura as rotas de autenticação
func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController) {
	auth := app.Group("/auth")

	// POST /auth/register - registro de usuário
	auth.Post("/register", authController.Register)

	// POST /auth/login - login de usuário
	auth.Post("/login", authController.Login)

	// GET /auth/me - dados do usuário autenticado
	auth.Get("/me", utils.AuthMiddleware, authController.Me)
}
