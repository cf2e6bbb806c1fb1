package controllers

import (
	"fmt"
	"sort"
	"time"

	"vipneus-backend/models"
	"vipneus-backend/services"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController controlador dos dados consolidados do dashboard
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// NameValue par nome/quantidade usado nos gráficos de pizza e de marcas
type NameValue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// MonthlyEntry totais de vendas e compras de um mês ("MM/YYYY")
type MonthlyEntry struct {
	Month   string  `json:"month"`
	Vendas  float64 `json:"vendas"`
	Compras float64 `json:"compras"`
}

// dataValor par (data, valor) usado para agregar por mês em Go,
// sem depender de função de data específica do banco
type dataValor struct {
	Data  time.Time
	Valor float64
}

// monthKey devolve a chave "YYYY-MM" de uma data
func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// monthLabel converte a chave "YYYY-MM" no rótulo de exibição "MM/YYYY"
func monthLabel(key string) string {
	return key[5:] + "/" + key[:4]
}

// monthlyTotals soma os valores agrupando pela chave "YYYY-MM"
func monthlyTotals(rows []dataValor) map[string]float64 {
	totals := make(map[string]float64)
	for _, row := range rows {
		totals[monthKey(row.Data)] += row.Valor
	}
	return totals
}

// GetDashboard devolve os dados consolidados do dashboard
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	// Estatísticas gerais
	var totalTires, totalSold, totalPurchased int64
	dc.DB.Model(&models.Tire{}).Where("user_id = ? AND vendido = ?", userID, false).Count(&totalTires)
	dc.DB.Model(&models.Sale{}).Where("user_id = ?", userID).Count(&totalSold)
	dc.DB.Model(&models.Purchase{}).Where("user_id = ?", userID).Count(&totalPurchased)

	var totalEntrada, totalSaida float64
	dc.DB.Model(&models.Purchase{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(valor), 0)").Scan(&totalEntrada)
	dc.DB.Model(&models.Sale{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(valor), 0)").Scan(&totalSaida)

	// Lucro real: soma do lucro de cada venda
	var sales []models.Sale
	dc.DB.Preload("Tire.Purchase").Where("user_id = ?", userID).Find(&sales)

	var lucro float64
	for i := range sales {
		_, saleLucro := services.SaleProfit(&sales[i])
		lucro += saleLucro
	}

	// Pneus em estoque por condição
	var conditionRows []struct {
		Condicao string
		Count    int64
	}
	dc.DB.Model(&models.Tire{}).
		Select("condicao, COUNT(id) AS count").
		Where("user_id = ? AND vendido = ?", userID, false).
		Group("condicao").
		Scan(&conditionRows)

	conditionData := make([]NameValue, 0, len(conditionRows))
	for _, row := range conditionRows {
		name := row.Condicao
		if label, ok := models.ConditionLabels[row.Condicao]; ok {
			name = label
		}
		conditionData = append(conditionData, NameValue{Name: name, Value: row.Count})
	}

	// Top 5 marcas mais vendidas
	var brandRows []struct {
		Marca string
		Count int64
	}
	dc.DB.Model(&models.Sale{}).
		Select("tires.marca AS marca, COUNT(sales.id) AS count").
		Joins("JOIN tires ON tires.id = sales.tire_id").
		Where("sales.user_id = ?", userID).
		Group("tires.marca").
		Order("COUNT(sales.id) DESC").
		Limit(5).
		Scan(&brandRows)

	topBrands := make([]NameValue, 0, len(brandRows))
	for _, row := range brandRows {
		topBrands = append(topBrands, NameValue{Name: row.Marca, Value: row.Count})
	}

	// Totais mensais de vendas e compras, agregados em Go
	var saleRows, purchaseRows []dataValor
	dc.DB.Model(&models.Sale{}).Where("user_id = ?", userID).
		Select("data, valor").Scan(&saleRows)
	dc.DB.Model(&models.Purchase{}).Where("user_id = ?", userID).
		Select("data, valor").Scan(&purchaseRows)

	salesMonthly := monthlyTotals(saleRows)
	purchasesMonthly := monthlyTotals(purchaseRows)

	// União dos meses, em ordem cronológica
	monthSet := make(map[string]bool)
	for key := range salesMonthly {
		monthSet[key] = true
	}
	for key := range purchasesMonthly {
		monthSet[key] = true
	}

	months := make([]string, 0, len(monthSet))
	for key := range monthSet {
		months = append(months, key)
	}
	sort.Strings(months)

	monthlyData := make([]MonthlyEntry, 0, len(months))
	for _, key := range months {
		monthlyData = append(monthlyData, MonthlyEntry{
			Month:   monthLabel(key),
			Vendas:  salesMonthly[key],
			Compras: purchasesMonthly[key],
		})
	}

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"total_tires":     totalTires,
			"total_sold":      totalSold,
			"total_purchased": totalPurchased,
			"total_entrada":   totalEntrada,
			"total_saida":     totalSaida,
			"lucro":           lucro,
		},
		"condition_data": conditionData,
		"top_brands":     topBrands,
		"monthly_data":   monthlyData,
	})
}
