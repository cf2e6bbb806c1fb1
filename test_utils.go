package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"vipneus-backend/controllers"
	"vipneus-backend/models"
	"vipneus-backend/routes"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB cria um banco de dados de teste em memória
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to test database")
	}
	db.AutoMigrate(&models.User{}, &models.Purchase{}, &models.Tire{}, &models.Sale{})
	return db
}

// setupTestApp cria a aplicação Fiber completa sobre o banco informado
func setupTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	routes.SetupAuthRoutes(app, controllers.NewAuthController(db))
	routes.SetupTireRoutes(app, controllers.NewTireController(db))
	routes.SetupPurchaseRoutes(app, controllers.NewPurchaseController(db))
	routes.SetupSaleRoutes(app, controllers.NewSaleController(db))
	routes.SetupDashboardRoutes(app, controllers.NewDashboardController(db))
	routes.SetupReportRoutes(app, controllers.NewReportController(db))

	return app
}

// createTestUsers cria dois usuários de teste e devolve seus IDs
func createTestUsers(db *gorm.DB) (string, string) {
	user1 := models.User{
		Email:        "user1@test.com",
		PasswordHash: "hash1",
	}
	user2 := models.User{
		Email:        "user2@test.com",
		PasswordHash: "hash2",
	}

	db.Create(&user1)
	db.Create(&user2)

	return user1.ID, user2.ID
}

// authToken gera um token JWT válido para o usuário
func authToken(userID string) string {
	token, _ := utils.GenerateJWT(userID, userID+"@test.com")
	return token
}

// jsonRequest monta uma requisição JSON autenticada
func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// decodeBody decodifica o corpo da resposta em out
func decodeBody(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}
