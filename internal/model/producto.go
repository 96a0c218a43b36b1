package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog entry. Cantidad is decimal because weighed goods
// (Unidad = "kg") are sold in fractional amounts; unit-counted goods
// (Unidad = "und") carry whole numbers. Cantidad never goes negative:
// the checkout decrement is conditional on sufficient stock.
type Producto struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string          `gorm:"uniqueIndex;not null"`
	Cantidad     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Unidad       string          `gorm:"not null;default:'und'"` // "und" | "kg"
	PrecioCompra decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Categoria    string
	// Imagen stores a base64 data URI as uploaded from the catalog form,
	// so it needs TEXT rather than a varchar
	Imagen        *string   `gorm:"type:text"`
	FechaRegistro time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time
}
