package controllers

import (
	"encoding/json"
	"strings"

	"vipneus-backend/models"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TireController controlador do estoque de pneus
type TireController struct {
	DB *gorm.DB
}

// NewTireController cria uma nova instância de TireController
func NewTireController(db *gorm.DB) *TireController {
	return &TireController{DB: db}
}

// CreateTireRequest estrutura da requisição de cadastro manual de pneu
type CreateTireRequest struct {
	Marca    string  `json:"marca" validate:"required"`
	Medida   string  `json:"medida" validate:"required"`
	Aro      string  `json:"aro" validate:"required"`
	Condicao string  `json:"condicao" validate:"required"`
	Detalhes *string `json:"detalhes"`
}

// UpdateTireRequest estrutura da requisição de atualização parcial.
// Campos ausentes não são tocados. Vendido e data_saida ficam de fora:
// são controlados exclusivamente pela operação de venda, senão a
// invariante "vendido = existe venda" deixaria de valer.
type UpdateTireRequest struct {
	Marca    *string `json:"marca"`
	Medida   *string `json:"medida"`
	Aro      *string `json:"aro"`
	Condicao *string `json:"condicao"`
	Detalhes *string `json:"detalhes"`
}

// CreateTire cadastra um pneu manualmente (sem compra vinculada, sem custo)
func (tc *TireController) CreateTire(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var req CreateTireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Formato de dados inválido",
		})
	}

	if req.Marca == "" || req.Medida == "" || req.Aro == "" {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Marca, medida e aro são obrigatórios",
		})
	}

	condicao := models.TireCondition(req.Condicao)
	if !condicao.IsValid() {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Condição inválida",
		})
	}

	tire := models.Tire{
		Marca:    req.Marca,
		Medida:   req.Medida,
		Aro:      req.Aro,
		Condicao: condicao,
		Detalhes: req.Detalhes,
		Vendido:  false,
		UserID:   userID,
	}

	if err := tc.DB.Create(&tire).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao cadastrar pneu",
		})
	}

	return c.Status(201).JSON(tire)
}

// GetAvailableTires lista apenas pneus disponíveis (não vendidos) com filtros
func (tc *TireController) GetAvailableTires(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	query := tc.DB.Where("user_id = ? AND vendido = ?", userID, false)

	// Filtro "todas" equivale a nenhum filtro
	if marca := c.Query("marca"); marca != "" && !strings.EqualFold(marca, "todas") {
		query = query.Where("LOWER(marca) LIKE ?", "%"+strings.ToLower(marca)+"%")
	}
	if medida := c.Query("medida"); medida != "" && !strings.EqualFold(medida, "todas") {
		query = query.Where("medida = ?", medida)
	}
	if condicao := c.Query("condicao"); condicao != "" && !strings.EqualFold(condicao, "todas") {
		query = query.Where("condicao = ?", condicao)
	}

	var tires []models.Tire
	if err := query.Offset(c.QueryInt("skip", 0)).Limit(c.QueryInt("limit", 100)).Find(&tires).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao listar pneus",
		})
	}

	return c.JSON(tires)
}

// GetTires lista todos os pneus do usuário
func (tc *TireController) GetTires(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var tires []models.Tire
	if err := tc.DB.Where("user_id = ?", userID).
		Offset(c.QueryInt("skip", 0)).Limit(c.QueryInt("limit", 100)).
		Find(&tires).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao listar pneus",
		})
	}

	return c.JSON(tires)
}

// GetTire devolve um pneu pelo ID
func (tc *TireController) GetTire(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var tire models.Tire
	if err := tc.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&tire).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error":   true,
			"message": "Pneu não encontrado",
		})
	}

	return c.JSON(tire)
}

// UpdateTire aplica uma atualização parcial em um pneu
func (tc *TireController) UpdateTire(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var tire models.Tire
	if err := tc.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&tire).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error":   true,
			"message": "Pneu não encontrado",
		})
	}

	var req UpdateTireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Formato de dados inválido",
		})
	}

	// Chaves presentes no JSON: distingue "detalhes": null (limpa o
	// campo) de chave ausente (não toca)
	var rawBody map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &rawBody); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Formato de dados inválido",
		})
	}

	if req.Marca != nil {
		tire.Marca = *req.Marca
	}
	if req.Medida != nil {
		tire.Medida = *req.Medida
	}
	if req.Aro != nil {
		tire.Aro = *req.Aro
	}
	if req.Condicao != nil {
		condicao := models.TireCondition(*req.Condicao)
		if !condicao.IsValid() {
			return c.Status(400).JSON(fiber.Map{
				"error":   true,
				"message": "Condição inválida",
			})
		}
		tire.Condicao = condicao
	}
	if _, ok := rawBody["detalhes"]; ok {
		tire.Detalhes = req.Detalhes
	}

	if err := tc.DB.Save(&tire).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao atualizar pneu",
		})
	}

	return c.JSON(tire)
}

// DeleteTire remove um pneu do estoque. Pneu com venda registrada não pode
// ser removido: apagar o registro reescreveria o histórico de lucro. A
// guarda consulta a tabela de vendas, não a flag vendido, para não depender
// de um estado que poderia estar dessincronizado.
func (tc *TireController) DeleteTire(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var tire models.Tire
	if err := tc.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&tire).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error":   true,
			"message": "Pneu não encontrado",
		})
	}

	var salesCount int64
	tc.DB.Model(&models.Sale{}).Where("tire_id = ?", tire.ID).Count(&salesCount)
	if tire.Vendido || salesCount > 0 {
		return c.Status(409).JSON(fiber.Map{
			"error":   true,
			"message": "Pneu vendido não pode ser removido",
		})
	}

	if err := tc.DB.Delete(&tire).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao remover pneu",
		})
	}

	return c.SendStatus(204)
}
