package service

import (
	"context"
	"fmt"
	"time"

	"keso/internal/dto"
	"keso/internal/repository"

	"github.com/shopspring/decimal"
)

// FinanzasService computes the period-bounded financial report and the
// dashboard totals. Every call re-scans the stores — no caching; the data
// volumes of a single store never justify it.
type FinanzasService interface {
	ResumenRango(ctx context.Context, req dto.RangoRequest) (*dto.ResumenRangoResponse, error)
	ResumenGlobal(ctx context.Context) (*dto.ResumenGlobalResponse, error)
	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type finanzasService struct {
	ventaRepo    repository.VentaRepository
	cobroRepo    repository.CobroRepository
	gastoRepo    repository.GastoRepository
	productoRepo repository.ProductoRepository
}

func NewFinanzasService(
	ventaRepo repository.VentaRepository,
	cobroRepo repository.CobroRepository,
	gastoRepo repository.GastoRepository,
	productoRepo repository.ProductoRepository,
) FinanzasService {
	return &finanzasService{
		ventaRepo:    ventaRepo,
		cobroRepo:    cobroRepo,
		gastoRepo:    gastoRepo,
		productoRepo: productoRepo,
	}
}

// ResumenRango sums sales and expenses with fecha in [startDate, endDate].
// Income is realized income: pending credit sales are subtracted from gross
// sales and only count once the receivable is marked paid.
func (s *finanzasService) ResumenRango(ctx context.Context, req dto.RangoRequest) (*dto.ResumenRangoResponse, error) {
	desde, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate inválida: %w", err)
	}
	hasta, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate inválida: %w", err)
	}
	// inclusive end of day
	hasta = hasta.Add(24*time.Hour - time.Nanosecond)

	ventas, err := s.ventaRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	bruto := decimal.Zero
	for _, v := range ventas {
		bruto = bruto.Add(v.Total)
	}

	pendientes, err := s.cobroRepo.ListPendientesEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	porCobrar := decimal.Zero
	for _, c := range pendientes {
		porCobrar = porCobrar.Add(c.Monto)
	}
	ingresos := bruto.Sub(porCobrar)

	gastos, err := s.gastoRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	totalGastos := decimal.Zero
	fijos := decimal.Zero
	variables := decimal.Zero
	lista := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		g := &gastos[i]
		totalGastos = totalGastos.Add(g.Monto)
		switch g.Tipo {
		case "Fijo":
			fijos = fijos.Add(g.Monto)
		default:
			variables = variables.Add(g.Monto)
		}
		lista = append(lista, *gastoToResponse(g))
	}

	return &dto.ResumenRangoResponse{
		TotalIngresos:   ingresos,
		TotalGastos:     totalGastos,
		Balance:         ingresos.Sub(totalGastos),
		GastosFijos:     fijos,
		GastosVariables: variables,
		ListaGastos:     lista,
	}, nil
}

// ResumenGlobal is the all-time income/expense balance shown on the landing
// dashboard, with the same realized-income rule as ResumenRango.
func (s *finanzasService) ResumenGlobal(ctx context.Context) (*dto.ResumenGlobalResponse, error) {
	req := dto.RangoRequest{
		StartDate: "1970-01-01",
		EndDate:   time.Now().Format("2006-01-02"),
	}
	rango, err := s.ResumenRango(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenGlobalResponse{
		TotalIngresos: rango.TotalIngresos,
		TotalGastos:   rango.TotalGastos,
		Balance:       rango.Balance,
	}, nil
}

func (s *finanzasService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	productos, err := s.productoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	valor := decimal.Zero
	venta := decimal.Zero
	for _, p := range productos {
		valor = valor.Add(p.PrecioCompra.Mul(p.Cantidad))
		venta = venta.Add(p.PrecioVenta.Mul(p.Cantidad))
	}

	pendientes, err := s.cobroRepo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	porCobrar := decimal.Zero
	for _, c := range pendientes {
		porCobrar = porCobrar.Add(c.Monto)
	}

	return &dto.DashboardStatsResponse{
		TotalProductos:   len(productos),
		ValorInventario:  valor,
		GananciaEstimada: venta.Sub(valor),
		TotalPorCobrar:   porCobrar,
	}, nil
}
