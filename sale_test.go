package main

import (
	"testing"

	"vipneus-backend/controllers"
	"vipneus-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateSale(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db)
	user1ID, user2ID := createTestUsers(db)

	t.Run("Venda de pneu comprado calcula custo e lucro", func(t *testing.T) {
		purchase := models.Purchase{Valor: 100, Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: user1ID}
		db.Create(&purchase)
		tire := models.Tire{Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, PurchaseID: &purchase.ID, UserID: user1ID}
		db.Create(&tire)

		body := map[string]interface{}{"tire_id": tire.ID, "valor": 180.0}
		resp, err := app.Test(jsonRequest("POST", "/sales", body, authToken(user1ID)))
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var sale controllers.SaleResponse
		assert.NoError(t, decodeBody(resp, &sale))
		assert.Equal(t, tire.ID, sale.TireID)
		assert.Equal(t, 180.0, sale.Valor)
		assert.Equal(t, "Pirelli", sale.Marca)
		if assert.NotNil(t, sale.Custo) {
			assert.Equal(t, 100.0, *sale.Custo)
		}
		assert.Equal(t, 80.0, sale.Lucro)

		// O pneu vira vendido com data de saída
		var updated models.Tire
		db.First(&updated, "id = ?", tire.ID)
		assert.True(t, updated.Vendido)
		assert.NotNil(t, updated.DataSaida)
	})

	t.Run("Venda de pneu manual conta o valor inteiro como lucro", func(t *testing.T) {
		tire := models.Tire{Marca: "Goodyear", Medida: "205/55", Aro: "16", Condicao: models.ConditionSeminovo, UserID: user1ID}
		db.Create(&tire)

		body := map[string]interface{}{"tire_id": tire.ID, "valor": 120.0}
		resp, err := app.Test(jsonRequest("POST", "/sales", body, authToken(user1ID)))
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var sale controllers.SaleResponse
		assert.NoError(t, decodeBody(resp, &sale))
		assert.Nil(t, sale.Custo)
		assert.Equal(t, 120.0, sale.Lucro)
	})

	t.Run("Pneu já vendido", func(t *testing.T) {
		tire := models.Tire{Marca: "Firestone", Medida: "175/70", Aro: "14", Condicao: models.ConditionMeiaVida, UserID: user1ID}
		db.Create(&tire)

		body := map[string]interface{}{"tire_id": tire.ID, "valor": 90.0}
		resp, _ := app.Test(jsonRequest("POST", "/sales", body, authToken(user1ID)))
		assert.Equal(t, 201, resp.StatusCode)

		// Segunda venda do mesmo pneu falha e não cria registro
		body = map[string]interface{}{"tire_id": tire.ID, "valor": 50.0}
		resp, err := app.Test(jsonRequest("POST", "/sales", body, authToken(user1ID)))
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)

		var count int64
		db.Model(&models.Sale{}).Where("tire_id = ?", tire.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Valor não positivo", func(t *testing.T) {
		tire := models.Tire{Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: user1ID}
		db.Create(&tire)

		body := map[string]interface{}{"tire_id": tire.ID, "valor": -10.0}
		resp, err := app.Test(jsonRequest("POST", "/sales", body, authToken(user1ID)))
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Pneu inexistente", func(t *testing.T) {
		body := map[string]interface{}{"tire_id": "nao-existe", "valor": 100.0}
		resp, err := app.Test(jsonRequest("POST", "/sales", body, authToken(user1ID)))
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Pneu de outro usuário", func(t *testing.T) {
		tire := models.Tire{Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: user1ID}
		db.Create(&tire)

		body := map[string]interface{}{"tire_id": tire.ID, "valor": 100.0}
		resp, err := app.Test(jsonRequest("POST", "/sales", body, authToken(user2ID)))
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestListSales(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db)
	user1ID, _ := createTestUsers(db)

	// Um pneu comprado e um manual, ambos vendidos
	purchase := models.Purchase{Valor: 100, Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: user1ID}
	db.Create(&purchase)
	tireComprado := models.Tire{Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, PurchaseID: &purchase.ID, UserID: user1ID}
	db.Create(&tireComprado)
	tireManual := models.Tire{Marca: "Goodyear", Medida: "205/55", Aro: "16", Condicao: models.ConditionSeminovo, UserID: user1ID}
	db.Create(&tireManual)

	for _, body := range []map[string]interface{}{
		{"tire_id": tireComprado.ID, "valor": 180.0},
		{"tire_id": tireManual.ID, "valor": 120.0},
	} {
		resp, _ := app.Test(jsonRequest("POST", "/sales", body, authToken(user1ID)))
		assert.Equal(t, 201, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest("GET", "/sales", nil, authToken(user1ID)))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var sales []controllers.SaleResponse
	assert.NoError(t, decodeBody(resp, &sales))
	assert.Len(t, sales, 2)

	// Cada linha vem expandida com os dados do pneu e o lucro
	byTire := map[string]controllers.SaleResponse{}
	for _, sale := range sales {
		byTire[sale.TireID] = sale
	}

	comprado := byTire[tireComprado.ID]
	if assert.NotNil(t, comprado.Custo) {
		assert.Equal(t, 100.0, *comprado.Custo)
	}
	assert.Equal(t, 80.0, comprado.Lucro)
	assert.Equal(t, "Pirelli", comprado.Marca)

	manual := byTire[tireManual.ID]
	assert.Nil(t, manual.Custo)
	assert.Equal(t, 120.0, manual.Lucro)
}

func TestListSalesOrphanTire(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db)
	user1ID, _ := createTestUsers(db)

	// Venda cujo pneu não existe mais no banco: a listagem responde com
	// os campos da própria venda, sem derrubar o servidor
	orphan := models.Sale{TireID: "pneu-removido", Valor: 90, UserID: user1ID}
	db.Create(&orphan)

	resp, err := app.Test(jsonRequest("GET", "/sales", nil, authToken(user1ID)))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var sales []controllers.SaleResponse
	assert.NoError(t, decodeBody(resp, &sales))
	if assert.Len(t, sales, 1) {
		assert.Equal(t, orphan.ID, sales[0].ID)
		assert.Empty(t, sales[0].Marca)
		assert.Nil(t, sales[0].Custo)
		assert.Equal(t, 90.0, sales[0].Lucro)
	}

	// O mesmo vale para a busca por ID
	resp, err = app.Test(jsonRequest("GET", "/sales/"+orphan.ID, nil, authToken(user1ID)))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var found controllers.SaleResponse
	assert.NoError(t, decodeBody(resp, &found))
	assert.Empty(t, found.Marca)
	assert.Equal(t, 90.0, found.Lucro)
}

func TestGetSale(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db)
	user1ID, user2ID := createTestUsers(db)

	tire := models.Tire{Marca: "Pirelli", Medida: "195/65", Aro: "15", Condicao: models.ConditionNovo, UserID: user1ID}
	db.Create(&tire)
	sale := models.Sale{TireID: tire.ID, Valor: 150, UserID: user1ID}
	db.Create(&sale)
	db.Model(&tire).Updates(map[string]interface{}{"vendido": true})

	t.Run("Busca por ID", func(t *testing.T) {
		resp, err := app.Test(jsonRequest("GET", "/sales/"+sale.ID, nil, authToken(user1ID)))
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var found controllers.SaleResponse
		assert.NoError(t, decodeBody(resp, &found))
		assert.Equal(t, sale.ID, found.ID)
		assert.Equal(t, "Pirelli", found.Marca)
		assert.Nil(t, found.Custo)
		assert.Equal(t, 150.0, found.Lucro)
	})

	t.Run("Isolamento entre usuários", func(t *testing.T) {
		resp, err := app.Test(jsonRequest("GET", "/sales/"+sale.ID, nil, authToken(user2ID)))
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
