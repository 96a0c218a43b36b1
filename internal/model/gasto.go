package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gasto is an operating expense, independent of sales and inventory.
// Tipo: "Fijo" (rent, salaries) | "Variable" (one-off purchases).
type Gasto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Concepto  string          `gorm:"not null"`
	Monto     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Categoria string          `gorm:"not null;default:'General'"`
	Tipo      string          `gorm:"not null;default:'Variable'"` // Fijo | Variable
	Fecha     time.Time       `gorm:"index;autoCreateTime"`
}

// TableName: gastos, not gastoes.
func (Gasto) TableName() string { return "gastos" }
