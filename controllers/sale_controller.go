package controllers

import (
	"errors"
	"time"

	"vipneus-backend/models"
	"vipneus-backend/services"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// errTireAlreadySold sinaliza a corrida de duas vendas sobre o mesmo pneu
var errTireAlreadySold = errors.New("pneu já foi vendido")

// SaleController controlador de vendas
type SaleController struct {
	DB *gorm.DB
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{DB: db}
}

// CreateSaleRequest estrutura da requisição de registro de venda
type CreateSaleRequest struct {
	TireID string  `json:"tire_id" validate:"required"`
	Valor  float64 `json:"valor" validate:"required,gt=0"`
}

// SaleResponse venda expandida com os dados do pneu e o lucro calculado
type SaleResponse struct {
	ID       string               `json:"id"`
	TireID   string               `json:"tire_id"`
	Valor    float64              `json:"valor"`
	Data     time.Time            `json:"data"`
	Marca    string               `json:"marca"`
	Medida   string               `json:"medida"`
	Aro      string               `json:"aro"`
	Condicao models.TireCondition `json:"condicao"`
	Custo    *float64             `json:"custo"`
	Lucro    float64              `json:"lucro"`
}

func newSaleResponse(sale *models.Sale, tire *models.Tire) SaleResponse {
	custo, lucro := services.Profit(sale.Valor, services.TireCost(tire))
	resp := SaleResponse{
		ID:     sale.ID,
		TireID: sale.TireID,
		Valor:  sale.Valor,
		Data:   sale.Data,
		Custo:  custo,
		Lucro:  lucro,
	}
	// Venda órfã (pneu removido do banco): só os campos da própria venda
	if tire != nil {
		resp.Marca = tire.Marca
		resp.Medida = tire.Medida
		resp.Aro = tire.Aro
		resp.Condicao = tire.Condicao
	}
	return resp
}

// CreateSale registra uma venda e marca o pneu como vendido, na mesma
// transação. A flag vendido é virada com compare-and-set: duas vendas
// concorrentes sobre o mesmo pneu nunca geram dois registros.
func (sc *SaleController) CreateSale(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var req CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Formato de dados inválido",
		})
	}

	if req.Valor <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "O valor de venda deve ser maior que 0",
		})
	}

	var tire models.Tire
	if err := sc.DB.Preload("Purchase").
		Where("id = ? AND user_id = ?", req.TireID, userID).First(&tire).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error":   true,
			"message": "Pneu não encontrado",
		})
	}

	if tire.Vendido {
		return c.Status(409).JSON(fiber.Map{
			"error":   true,
			"message": "Pneu já foi vendido",
		})
	}

	sale := models.Sale{
		TireID: tire.ID,
		Valor:  req.Valor,
		UserID: userID,
	}

	now := time.Now().UTC()
	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Tire{}).
			Where("id = ? AND user_id = ? AND vendido = ?", tire.ID, userID, false).
			Updates(map[string]interface{}{"vendido": true, "data_saida": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errTireAlreadySold
		}

		return tx.Create(&sale).Error
	})
	if err != nil {
		if errors.Is(err, errTireAlreadySold) {
			return c.Status(409).JSON(fiber.Map{
				"error":   true,
				"message": "Pneu já foi vendido",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao registrar venda",
		})
	}

	tire.Vendido = true
	tire.DataSaida = &now

	return c.Status(201).JSON(newSaleResponse(&sale, &tire))
}

// GetSales lista as vendas do usuário, mais recentes primeiro
func (sc *SaleController) GetSales(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var sales []models.Sale
	if err := sc.DB.Preload("Tire.Purchase").
		Where("user_id = ?", userID).
		Order("data DESC").
		Offset(c.QueryInt("skip", 0)).Limit(c.QueryInt("limit", 100)).
		Find(&sales).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao listar vendas",
		})
	}

	result := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		result = append(result, newSaleResponse(&sales[i], sales[i].Tire))
	}

	return c.JSON(result)
}

// GetSale devolve uma venda pelo ID
func (sc *SaleController) GetSale(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var sale models.Sale
	if err := sc.DB.Preload("Tire.Purchase").
		Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&sale).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error":   true,
			"message": "Venda não encontrada",
		})
	}

	return c.JSON(newSaleResponse(&sale, sale.Tire))
}
