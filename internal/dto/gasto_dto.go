package dto

import "github.com/shopspring/decimal"

type CrearGastoRequest struct {
	Concepto  string          `json:"concepto"  validate:"required"`
	Monto     decimal.Decimal `json:"monto"     validate:"required"`
	Categoria string          `json:"categoria"`
	Tipo      string          `json:"tipo"      validate:"omitempty,oneof=Fijo Variable"`
}

type GastoResponse struct {
	ID        string          `json:"id"`
	Concepto  string          `json:"concepto"`
	Monto     decimal.Decimal `json:"monto"`
	Categoria string          `json:"categoria"`
	Tipo      string          `json:"tipo"`
	Fecha     string          `json:"fecha"`
}
