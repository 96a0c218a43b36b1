package dto

import "github.com/shopspring/decimal"

// CobroResponse is one receivable (cuenta por cobrar).
type CobroResponse struct {
	ID       string          `json:"id"`
	VentaID  string          `json:"venta_id"`
	Cliente  string          `json:"cliente"`
	Telefono string          `json:"telefono"`
	Monto    decimal.Decimal `json:"monto"`
	Estado   string          `json:"estado"` // pendiente | pagado
	Fecha    string          `json:"fecha"`
	// Venta is populated on GET /api/receivables so the list can show the
	// product breakdown behind each debt
	Venta *VentaResponse `json:"venta,omitempty"`
}

// RecordatorioRequest is the body of POST /api/receivables/:id/recordatorio.
type RecordatorioRequest struct {
	Email string `json:"email" validate:"required,email"`
}
