package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado values for CuentaPorCobrar.
const (
	CobroPendiente = "pendiente"
	CobroPagado    = "pagado"
)

// CuentaPorCobrar registra la deuda de un cliente por una venta a crédito.
// Only credit sales own one; the transition pendiente → pagado happens
// exactly once and never reverses.
type CuentaPorCobrar struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Cliente  string    `gorm:"not null"`
	Telefono string
	Monto    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estado   string          `gorm:"not null;default:'pendiente'"` // pendiente | pagado
	Fecha    time.Time       `gorm:"autoCreateTime"`

	Venta *Venta `gorm:"foreignKey:VentaID"`
}

// TableName overrides GORM's default pluralization.
func (CuentaPorCobrar) TableName() string { return "cuentas_por_cobrar" }
