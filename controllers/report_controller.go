package controllers

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"vipneus-backend/models"
	"vipneus-backend/services"
	"vipneus-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportController controlador dos relatórios mensais
type ReportController struct {
	DB *gorm.DB
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// MonthlySaleEntry linha de venda do relatório mensal
type MonthlySaleEntry struct {
	ID     string   `json:"id"`
	Data   string   `json:"data"`
	Marca  string   `json:"marca"`
	Medida string   `json:"medida"`
	Aro    string   `json:"aro"`
	Valor  float64  `json:"valor"`
	Custo  *float64 `json:"custo"`
	Lucro  float64  `json:"lucro"`
}

// MonthlyPurchaseEntry linha de compra do relatório mensal
type MonthlyPurchaseEntry struct {
	ID     string  `json:"id"`
	Data   string  `json:"data"`
	Marca  string  `json:"marca"`
	Medida string  `json:"medida"`
	Aro    string  `json:"aro"`
	Valor  float64 `json:"valor"`
}

// errInvalidMonth chave de mês fora do formato YYYY-MM
var errInvalidMonth = errors.New("formato de mês inválido")

// parseMonth valida a chave "YYYY-MM" e devolve ano e mês
func parseMonth(month string) (int, time.Month, error) {
	parts := strings.Split(month, "-")
	if len(parts) != 2 {
		return 0, 0, errInvalidMonth
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errInvalidMonth
	}
	mon, err := strconv.Atoi(parts[1])
	if err != nil || mon < 1 || mon > 12 {
		return 0, 0, errInvalidMonth
	}

	return year, time.Month(mon), nil
}

// GetAvailableMonths devolve os meses que têm vendas ou compras,
// mais recentes primeiro
func (rc *ReportController) GetAvailableMonths(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	var saleDates, purchaseDates []time.Time
	rc.DB.Model(&models.Sale{}).Where("user_id = ?", userID).Pluck("data", &saleDates)
	rc.DB.Model(&models.Purchase{}).Where("user_id = ?", userID).Pluck("data", &purchaseDates)

	monthSet := make(map[string]bool)
	for _, d := range saleDates {
		monthSet[monthKey(d)] = true
	}
	for _, d := range purchaseDates {
		monthSet[monthKey(d)] = true
	}

	months := make([]string, 0, len(monthSet))
	for key := range monthSet {
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return c.JSON(fiber.Map{
		"months": months,
	})
}

// GetMonthlyReport devolve o relatório detalhado de um mês ("YYYY-MM").
// O filtro usa o intervalo [primeiro dia do mês, primeiro dia do mês
// seguinte), que qualquer banco avalia da mesma forma.
func (rc *ReportController) GetMonthlyReport(c *fiber.Ctx) error {
	userID := utils.CurrentUserID(c)

	month := c.Params("month")
	year, mon, err := parseMonth(month)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   true,
			"message": "Formato de mês inválido. Use YYYY-MM",
		})
	}

	start := time.Date(year, mon, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var sales []models.Sale
	if err := rc.DB.Preload("Tire.Purchase").
		Where("user_id = ? AND data >= ? AND data < ?", userID, start, end).
		Order("data DESC").
		Find(&sales).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao gerar relatório",
		})
	}

	var purchases []models.Purchase
	if err := rc.DB.
		Where("user_id = ? AND data >= ? AND data < ?", userID, start, end).
		Order("data DESC").
		Find(&purchases).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   true,
			"message": "Erro ao gerar relatório",
		})
	}

	var totalVendas, totalCompras, lucro float64
	salesData := make([]MonthlySaleEntry, 0, len(sales))
	for i := range sales {
		sale := &sales[i]
		totalVendas += sale.Valor

		custo, saleLucro := services.SaleProfit(sale)
		lucro += saleLucro

		entry := MonthlySaleEntry{
			ID:    sale.ID,
			Data:  sale.Data.Format(time.RFC3339),
			Valor: sale.Valor,
			Custo: custo,
			Lucro: saleLucro,
		}
		if sale.Tire != nil {
			entry.Marca = sale.Tire.Marca
			entry.Medida = sale.Tire.Medida
			entry.Aro = sale.Tire.Aro
		}
		salesData = append(salesData, entry)
	}

	purchasesData := make([]MonthlyPurchaseEntry, 0, len(purchases))
	for _, purchase := range purchases {
		totalCompras += purchase.Valor
		purchasesData = append(purchasesData, MonthlyPurchaseEntry{
			ID:     purchase.ID,
			Data:   purchase.Data.Format(time.RFC3339),
			Marca:  purchase.Marca,
			Medida: purchase.Medida,
			Aro:    purchase.Aro,
			Valor:  purchase.Valor,
		})
	}

	return c.JSON(fiber.Map{
		"month":           month,
		"total_vendas":    totalVendas,
		"total_compras":   totalCompras,
		"lucro":           lucro,
		"sales_count":     len(sales),
		"purchases_count": len(purchases),
		"sales":           salesData,
		"purchases":       purchasesData,
	})
}
