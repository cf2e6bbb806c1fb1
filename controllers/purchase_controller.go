package controllers

import (
	"errors"

	"vipneus-backend/models"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PurchaseController controlador de compras
type PurchaseController struct {
	DB *gorm.DB
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: db}
}

// CreatePurchaseRequest estrutura da requisição de registro de compra
type CreatePurchaseRequest struct {
	Valor    float64 `json:"valor" validate:"required,gt=0"`
	Marca    string  `json:"marca" validate:"required"`
	Medida   string  `json:"medida" validate:"required"`
	Aro      string  `json:"aro" validate:"required"`
	Condicao string  `json:"condicao" validate:"required"`
	Detalhes *string `json:"detalhes"`
}

// CreatePurchase registra uma compra E adiciona o pneu ao estoque.
// As duas escritas acontecem na mesma transação: ou ambas persistem ou
// nenhuma (uma compra sem pneu, ou vice-versa, quebra o vínculo 1:1).
func (pc *PurchaseController) CreatePurchase(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var req CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Formato de dados inválido",
		})
	}

	if req.Valor <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "O valor deve ser maior que 0",
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

	purchase := models.Purchase{
		Valor:    req.Valor,
		Marca:    req.Marca,
		Medida:   req.Medida,
		Aro:      req.Aro,
		Condicao: condicao,
		Detalhes: req.Detalhes,
		UserID:   userID,
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		tire := models.Tire{
			Marca:      purchase.Marca,
			Medida:     purchase.Medida,
			Aro:        purchase.Aro,
			Condicao:   purchase.Condicao,
			Detalhes:   purchase.Detalhes,
			Vendido:    false,
			PurchaseID: &purchase.ID,
			UserID:     userID,
		}

		return tx.Create(&tire).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao registrar compra",
		})
	}

	return c.Status(201).JSON(purchase)
}

// GetPurchases lista as compras do usuário, mais recentes primeiro
func (pc *PurchaseController) GetPurchases(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var purchases []models.Purchase
	if err := pc.DB.Where("user_id = ?", userID).
		Order("data DESC").
		Offset(c.QueryInt("skip", 0)).Limit(c.QueryInt("limit", 100)).
		Find(&purchases).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao listar compras",
		})
	}

	return c.JSON(purchases)
}

// GetPurchase devolve uma compra pelo ID
func (pc *PurchaseController) GetPurchase(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var purchase models.Purchase
	if err := pc.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&purchase).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error":   true,
			"message": "Compra não encontrada",
		})
	}

	return c.JSON(purchase)
}

// DeletePurchase remove a compra E o pneu vinculado, se ainda não vendido.
// Pneu já vendido fica no banco: ele ancora o custo histórico da venda.
func (pc *PurchaseController) DeletePurchase(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var purchase models.Purchase
	if err := pc.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&purchase).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error":   true,
			"message": "Compra não encontrada",
		})
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var tire models.Tire
		err := tx.Where("purchase_id = ? AND user_id = ?", purchase.ID, userID).First(&tire).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && !tire.Vendido {
			if err := tx.Delete(&tire).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&purchase).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao remover compra",
		})
	}

	return c.SendStatus(204)
}
