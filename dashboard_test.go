package main

import (
	"testing"
	"time"

	"vipneus-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// seedLedger monta um cenário com compras, estoque e vendas para o usuário
func seedLedger(db *gorm.DB, userID string) {
	jan := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)

	// Duas compras: uma em janeiro, outra em fevereiro
	p1 := models.Purchase{Valor: 100, Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, Data: jan, UserID: userID}
	p2 := models.Purchase{Valor: 200, Marca: "Michelin", Medida: "225/45", Aro: "17", Condicao: models.ConditionNovo, Data: feb, UserID: userID}
	db.Create(&p1)
	db.Create(&p2)

	// Estoque: pneu da compra 1 (vendido), pneu da compra 2, um manual
	// vendido e dois manuais em estoque
	saida := feb.Add(2 * time.Hour)
	t1 := models.Tire{Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, PurchaseID: &p1.ID, Vendido: true, DataSaida: &saida, UserID: userID}
	t2 := models.Tire{Marca: "Michelin", Medida: "225/45", Aro: "17", Condicao: models.ConditionNovo, PurchaseID: &p2.ID, UserID: userID}
	t3 := models.Tire{Marca: "Pirelli", Medida: "205/55", Aro: "16", Condicao: models.ConditionSeminovo, Vendido: true, DataSaida: &saida, UserID: userID}
	t4 := models.Tire{Marca: "Goodyear", Medida: "175/70", Aro: "14", Condicao: models.ConditionRecapado, UserID: userID}
	t5 := models.Tire{Marca: "Firestone", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: userID}
	for _, tire := range []*models.Tire{&t1, &t2, &t3, &t4, &t5} {
		db.Create(tire)
	}

	// Duas vendas em fevereiro: uma com custo (compra 1) e uma sem
	s1 := models.Sale{TireID: t1.ID, Valor: 180, Data: feb.Add(time.Hour), UserID: userID}
	s2 := models.Sale{TireID: t3.ID, Valor: 120, Data: feb.Add(3 * time.Hour), UserID: userID}
	db.Create(&s1)
	db.Create(&s2)
}

func TestDashboard(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db)
	user1ID, user2ID := createTestUsers(db)

	seedLedger(db, user1ID)

	// Movimento de outro usuário não pode vazar para o dashboard
	db.Create(&models.Purchase{Valor: 999, Marca: "Invasora", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: user2ID})
	db.Create(&models.Tire{Marca: "Invasora", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: user2ID})

	resp, err := app.Test(jsonRequest("GET", "/dashboard", nil, authToken(user1ID)))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Stats struct {
			TotalTires     int64   `json:"total_tires"`
			TotalSold      int64   `json:"total_sold"`
			TotalPurchased int64   `json:"total_purchased"`
			TotalEntrada   float64 `json:"total_entrada"`
			TotalSaida     float64 `json:"total_saida"`
			Lucro          float64 `json:"lucro"`
		} `json:"stats"`
		ConditionData []struct {
			Name  string `json:"name"`
			Value int64  `json:"value"`
		} `json:"condition_data"`
		TopBrands []struct {
			Name  string `json:"name"`
			Value int64  `json:"value"`
		} `json:"top_brands"`
		MonthlyData []struct {
			Month   string  `json:"month"`
			Vendas  float64 `json:"vendas"`
			Compras float64 `json:"compras"`
		} `json:"monthly_data"`
	}
	assert.NoError(t, decodeBody(resp, &body))

	// Estatísticas gerais
	assert.Equal(t, int64(3), body.Stats.TotalTires)
	assert.Equal(t, int64(2), body.Stats.TotalSold)
	assert.Equal(t, int64(2), body.Stats.TotalPurchased)
	assert.Equal(t, 300.0, body.Stats.TotalEntrada)
	assert.Equal(t, 300.0, body.Stats.TotalSaida)

	// Lucro: (180 - 100) da venda com custo + 120 da venda sem custo
	assert.Equal(t, 200.0, body.Stats.Lucro)

	// Estoque por condição, com rótulos de exibição
	conditions := map[string]int64{}
	for _, row := range body.ConditionData {
		conditions[row.Name] = row.Value
	}
	assert.Equal(t, map[string]int64{"Novo": 2, "Recapado": 1}, conditions)

	// Marcas mais vendidas
	if assert.Len(t, body.TopBrands, 1) {
		assert.Equal(t, "Pirelli", body.TopBrands[0].Name)
		assert.Equal(t, int64(2), body.TopBrands[0].Value)
	}

	// Série mensal em ordem cronológica, lado sem movimento zerado
	if assert.Len(t, body.MonthlyData, 2) {
		assert.Equal(t, "01/2024", body.MonthlyData[0].Month)
		assert.Equal(t, 0.0, body.MonthlyData[0].Vendas)
		assert.Equal(t, 100.0, body.MonthlyData[0].Compras)

		assert.Equal(t, "02/2024", body.MonthlyData[1].Month)
		assert.Equal(t, 300.0, body.MonthlyData[1].Vendas)
		assert.Equal(t, 200.0, body.MonthlyData[1].Compras)
	}
}

func TestDashboardEmpty(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db)
	user1ID, _ := createTestUsers(db)

	resp, err := app.Test(jsonRequest("GET", "/dashboard", nil, authToken(user1ID)))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, decodeBody(resp, &body))

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, 0.0, stats["total_entrada"])
	assert.Equal(t, 0.0, stats["total_saida"])
	assert.Equal(t, 0.0, stats["lucro"])
	assert.Empty(t, body["monthly_data"])
}
