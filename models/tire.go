package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TireCondition é o enum de condição do pneu
type TireCondition string

const (
	ConditionNovo     TireCondition = "novo"
	ConditionSeminovo TireCondition = "seminovo"
	ConditionRecapado TireCondition = "recapado"
	ConditionMeiaVida TireCondition = "meia-vida"
)

// IsValid verifica se o valor pertence ao enum
func (c TireCondition) IsValid() bool {
	switch c {
	case ConditionNovo, ConditionSeminovo, ConditionRecapado, ConditionMeiaVida:
		return true
	}
	return false
}

// ConditionLabels mapeia o código da condição para o rótulo de exibição
var ConditionLabels = map[string]string{
	"novo":      "Novo",
	"seminovo":  "Seminovo",
	"recapado":  "Recapado",
	"meia-vida": "Meia-vida",
}

// Tire representa um pneu em estoque
type Tire struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	Marca       string        `json:"marca" gorm:"not null"`
	Medida      string        `json:"medida" gorm:"not null"`
	Aro         string        `json:"aro" gorm:"not null"`
	Condicao    TireCondition `json:"condicao" gorm:"not null"`
	DataEntrada time.Time     `json:"data_entrada"`
	DataSaida   *time.Time    `json:"data_saida"`
	Detalhes    *string       `json:"detalhes"`
	Vendido     bool          `json:"vendido" gorm:"default:false"`

	// FK opcional: preenchida quando o pneu entrou no estoque via compra
	PurchaseID *string   `json:"purchase_id" gorm:"index"`
	Purchase   *Purchase `json:"-" gorm:"foreignKey:PurchaseID"`

	UserID string `json:"-" gorm:"index;not null"`
}

// BeforeCreate hook para gerar o ID e a data de entrada
func (t *Tire) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.DataEntrada.IsZero() {
		t.DataEntrada = time.Now().UTC()
	}
	return nil
}
