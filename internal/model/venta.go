package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a sale header. Items and (for credit sales) the CuentaPorCobrar
// are created together inside a single transaction and never mutated
// afterward. Cobro is nil for cash ("contado") sales.
type Venta struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroOrden string          `gorm:"uniqueIndex;not null"` // ORD-0001, ORD-0002, …
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Vendedor    string
	Cliente     string
	Fecha       time.Time `gorm:"index;autoCreateTime"`

	Items []VentaItem      `gorm:"foreignKey:VentaID"`
	Cobro *CuentaPorCobrar `gorm:"foreignKey:VentaID"`
}

// VentaItem is one line of a sale's product breakdown. ProductoID is the
// stable reference carried in the cart from selection time; Nombre is a
// snapshot so receipts survive later catalog renames.
type VentaItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Nombre         string          `gorm:"not null"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName overrides GORM's default pluralization (venta_items stays).
func (VentaItem) TableName() string { return "venta_items" }
