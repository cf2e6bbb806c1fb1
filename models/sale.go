package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale representa uma venda. Vendas são imutáveis depois de criadas:
// correções entram como operação de estorno, nunca como update/delete.
type Sale struct {
	ID     string    `json:"id" gorm:"primaryKey"`
	TireID string    `json:"tire_id" gorm:"index;not null"`
	Tire   *Tire     `json:"-" gorm:"foreignKey:TireID"`
	Data   time.Time `json:"data"`
	Valor  float64   `json:"valor" gorm:"not null"`

	UserID string `json:"-" gorm:"index;not null"`
}

// BeforeCreate hook para gerar o ID e a data da venda
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Data.IsZero() {
		s.Data = time.Now().UTC()
	}
	return nil
}
