package dto

import "github.com/shopspring/decimal"

// RangoRequest is the body of POST /api/finance-range.
type RangoRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate"   validate:"required,datetime=2006-01-02"`
}

// ResumenRangoResponse mirrors the shell's finance report panel.
// TotalIngresos is realized income: credit sales stay out of it until the
// receivable is marked paid.
type ResumenRangoResponse struct {
	TotalIngresos   decimal.Decimal `json:"totalIngresos"`
	TotalGastos     decimal.Decimal `json:"totalGastos"`
	Balance         decimal.Decimal `json:"balance"`
	GastosFijos     decimal.Decimal `json:"gastosFijos"`
	GastosVariables decimal.Decimal `json:"gastosVariables"`
	ListaGastos     []GastoResponse `json:"listaGastos"`
}

// ResumenGlobalResponse is the all-time variant (GET /api/finance-summary).
type ResumenGlobalResponse struct {
	TotalIngresos decimal.Decimal `json:"totalIngresos"`
	TotalGastos   decimal.Decimal `json:"totalGastos"`
	Balance       decimal.Decimal `json:"balance"`
}

// DashboardStatsResponse is the body of GET /api/dashboard-stats.
type DashboardStatsResponse struct {
	TotalProductos   int             `json:"totalProductos"`
	ValorInventario  decimal.Decimal `json:"valorInventario"`
	GananciaEstimada decimal.Decimal `json:"gananciaEstimada"`
	TotalPorCobrar   decimal.Decimal `json:"totalPorCobrar"`
}
