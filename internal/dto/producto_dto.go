package dto

import "github.com/shopspring/decimal"

// ProductoForm is bound from the multipart form of POST/PUT /api/inventario.
// The imagen file part is handled separately by the handler; ImagenExisting
// lets an edit keep the previously uploaded image.
type ProductoForm struct {
	Nombre         string          `form:"nombre"        validate:"required"`
	Cantidad       decimal.Decimal `form:"cantidad"`
	Unidad         string          `form:"unidad"        validate:"omitempty,oneof=und kg"`
	PrecioCompra   decimal.Decimal `form:"precio_compra"`
	PrecioVenta    decimal.Decimal `form:"precio_venta"`
	Categoria      string          `form:"categoria"`
	ImagenExisting string          `form:"imagenExisting"`
}

type ProductoResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Unidad        string          `json:"unidad"`
	PrecioCompra  decimal.Decimal `json:"precio_compra"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	Categoria     string          `json:"categoria"`
	Imagen        *string         `json:"imagen"`
	FechaRegistro string          `json:"fecha_registro"`
}

// MovimientoResponse is one stock audit row for GET /api/inventario/:id/movimientos.
type MovimientoResponse struct {
	ID            string          `json:"id"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	StockAnterior decimal.Decimal `json:"stock_anterior"`
	StockNuevo    decimal.Decimal `json:"stock_nuevo"`
	Motivo        string          `json:"motivo"`
	Fecha         string          `json:"fecha"`
}
