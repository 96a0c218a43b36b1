package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemCarritoRequest is one cart line. The product is referenced by its
// stable id, carried from selection time in the catalog UI.
type ItemCarritoRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"    validate:"required"`
}

// RegistrarVentaRequest is the body of POST /api/sales.
// Total is accepted for wire compatibility with the shell but recomputed
// server-side from catalog prices — the client copy is never trusted.
type RegistrarVentaRequest struct {
	Productos []ItemCarritoRequest `json:"productos" validate:"required,min=1,dive"`
	Total     decimal.Decimal      `json:"total"`
	Vendedor  string               `json:"vendedor"`
	Cliente   string               `json:"cliente"`
	Condicion string               `json:"condicion" validate:"required,oneof=contado credito"`
	Telefono  string               `json:"telefono"`
	// ClienteEmail: optional — when present, the ticket worker mails the PDF.
	ClienteEmail *string `json:"cliente_email" validate:"omitempty,email"`
}

// VentaFilter is bound from the query string of GET /api/sales.
type VentaFilter struct {
	Fecha string `form:"fecha"` // YYYY-MM-DD; empty = all
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	Orden     string              `json:"orden"`
	Total     decimal.Decimal     `json:"total"`
	Vendedor  string              `json:"vendedor"`
	Cliente   string              `json:"cliente"`
	Condicion string              `json:"condicion"`
	Productos []ItemVentaResponse `json:"productos"`
	Cobro     *CobroResponse      `json:"cobro,omitempty"`
	Fecha     string              `json:"fecha"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
