package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovimientoStock registra cada cambio de cantidad de un producto.
// Checkout writes one per sold line (inside the sale transaction); manual
// catalog edits that change cantidad write an "ajuste_manual" row.
type MovimientoStock struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo       string    `gorm:"not null"` // "venta" | "ajuste_manual" | "alta"
	// Cantidad: positive = entrada, negative = salida
	Cantidad      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockAnterior decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockNuevo    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Motivo        string
	ReferenciaID  *uuid.UUID `gorm:"type:uuid"` // venta_id when Tipo = "venta"
	CreatedAt     time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization (movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }
