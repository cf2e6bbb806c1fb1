package services

import "vipneus-backend/models"

// Profit aplica a regra de atribuição de lucro de uma venda.
// Pneu com compra vinculada: custo = valor da compra, lucro = venda - custo.
// Pneu adicionado manualmente (sem compra): custo = nil e o valor inteiro
// da venda conta como lucro.
func Profit(saleValor float64, purchaseValor *float64) (custo *float64, lucro float64) {
	if purchaseValor == nil {
		return nil, saleValor
	}
	c := *purchaseValor
	return &c, saleValor - c
}

// TireCost devolve o valor da compra vinculada ao pneu, se houver
func TireCost(tire *models.Tire) *float64 {
	if tire == nil || tire.PurchaseID == nil || tire.Purchase == nil {
		return nil
	}
	return &tire.Purchase.Valor
}

// SaleProfit combina TireCost e Profit para uma venda já carregada com
// Tire.Purchase (Preload)
func SaleProfit(sale *models.Sale) (custo *float64, lucro float64) {
	return Profit(sale.Valor, TireCost(sale.Tire))
}
