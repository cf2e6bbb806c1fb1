package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase representa uma compra (entrada de estoque com custo)
type Purchase struct {
	ID       string        `json:"id" gorm:"primaryKey"`
	Data     time.Time     `json:"data"`
	Valor    float64       `json:"valor" gorm:"not null"`
	Marca    string        `json:"marca" gorm:"not null"`
	Medida   string        `json:"medida" gorm:"not null"`
	Aro      string        `json:"aro" gorm:"not null"`
	Condicao TireCondition `json:"condicao" gorm:"not null"`
	Detalhes *string       `json:"detalhes"`

	// Cada compra gera exatamente um pneu; o pneu guarda a FK
	Tire *Tire `json:"-" gorm:"foreignKey:PurchaseID"`

	UserID string `json:"-" gorm:"index;not null"`
}

// BeforeCreate hook para gerar o ID e a data da compra
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Data.IsZero() {
		p.Data = time.Now().UTC()
	}
	return nil
}
