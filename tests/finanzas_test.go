package tests

import (
	"context"
	"testing"
	"time"

	"keso/internal/dto"
	"keso/internal/model"
	"keso/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type finanzasFixture struct {
	svc       service.FinanzasService
	ventas    *stubVentaRepo
	cobros    *stubCobroRepo
	gastos    *stubGastoRepo
	productos *stubProductoRepo
}

func newFinanzasFixture() *finanzasFixture {
	f := &finanzasFixture{
		ventas:    newStubVentaRepo(),
		cobros:    newStubCobroRepo(),
		gastos:    newStubGastoRepo(),
		productos: newStubProductoRepo(),
	}
	f.svc = service.NewFinanzasService(f.ventas, f.cobros, f.gastos, f.productos)
	return f
}

func (f *finanzasFixture) seedVenta(total float64, fecha time.Time) *model.Venta {
	v := &model.Venta{
		ID:    uuid.New(),
		Total: decimal.NewFromFloat(total),
		Fecha: fecha,
	}
	f.ventas.ventas[v.ID] = v
	return v
}

func (f *finanzasFixture) seedGasto(concepto, tipo string, monto float64, fecha time.Time) {
	g := &model.Gasto{
		ID:       uuid.New(),
		Concepto: concepto,
		Monto:    decimal.NewFromFloat(monto),
		Tipo:     tipo,
		Fecha:    fecha,
	}
	f.gastos.gastos[g.ID] = g
}

func fecha(dia string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04", dia)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestResumenRangoVacio(t *testing.T) {
	f := newFinanzasFixture()

	resumen, err := f.svc.ResumenRango(context.Background(), dto.RangoRequest{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})
	require.NoError(t, err)

	assert.True(t, resumen.TotalIngresos.IsZero())
	assert.True(t, resumen.TotalGastos.IsZero())
	assert.True(t, resumen.Balance.IsZero())
	assert.Empty(t, resumen.ListaGastos)
}

func TestResumenRangoSumaVentasYGastos(t *testing.T) {
	f := newFinanzasFixture()
	f.seedVenta(100, fecha("2026-03-05 10:00"))
	f.seedVenta(50, fecha("2026-03-20 16:30"))
	f.seedVenta(999, fecha("2026-04-01 09:00")) // outside the range
	f.seedGasto("Alquiler", "Fijo", 30, fecha("2026-03-01 08:00"))
	f.seedGasto("Hielo", "Variable", 10, fecha("2026-03-15 12:00"))

	resumen, err := f.svc.ResumenRango(context.Background(), dto.RangoRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)

	assert.True(t, resumen.TotalIngresos.Equal(decimal.NewFromInt(150)), "ingresos: %s", resumen.TotalIngresos)
	assert.True(t, resumen.TotalGastos.Equal(decimal.NewFromInt(40)))
	assert.True(t, resumen.Balance.Equal(decimal.NewFromInt(110)))
	assert.True(t, resumen.GastosFijos.Equal(decimal.NewFromInt(30)))
	assert.True(t, resumen.GastosVariables.Equal(decimal.NewFromInt(10)))
	assert.Len(t, resumen.ListaGastos, 2)
}

func TestResumenRangoExcluyeCreditoPendiente(t *testing.T) {
	f := newFinanzasFixture()
	f.seedVenta(100, fecha("2026-03-05 10:00"))
	credito := f.seedVenta(60, fecha("2026-03-10 11:00"))
	seedCobroEnFecha(f.cobros, credito, model.CobroPendiente, credito.Fecha)

	resumen, err := f.svc.ResumenRango(context.Background(), dto.RangoRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)

	// unpaid credit is not realized income: 160 gross − 60 pending
	assert.True(t, resumen.TotalIngresos.Equal(decimal.NewFromInt(100)), "ingresos: %s", resumen.TotalIngresos)
}

func TestResumenRangoIncluyeCreditoPagado(t *testing.T) {
	f := newFinanzasFixture()
	credito := f.seedVenta(60, fecha("2026-03-10 11:00"))
	seedCobroEnFecha(f.cobros, credito, model.CobroPagado, credito.Fecha)

	resumen, err := f.svc.ResumenRango(context.Background(), dto.RangoRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.True(t, resumen.TotalIngresos.Equal(decimal.NewFromInt(60)))
}

func TestResumenRangoIncluyeElDiaFinalCompleto(t *testing.T) {
	f := newFinanzasFixture()
	f.seedVenta(25, fecha("2026-03-31 23:59"))

	resumen, err := f.svc.ResumenRango(context.Background(), dto.RangoRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.True(t, resumen.TotalIngresos.Equal(decimal.NewFromInt(25)))
}

func TestResumenRangoFechaInvalida(t *testing.T) {
	f := newFinanzasFixture()

	_, err := f.svc.ResumenRango(context.Background(), dto.RangoRequest{
		StartDate: "31-03-2026",
		EndDate:   "2026-03-31",
	})
	assert.Error(t, err)
}

func TestResumenGlobalAcumulaTodo(t *testing.T) {
	f := newFinanzasFixture()
	f.seedVenta(100, fecha("2020-06-01 10:00"))
	f.seedVenta(200, fecha("2025-12-24 18:00"))
	f.seedGasto("Luz", "Fijo", 80, fecha("2023-01-10 09:00"))

	resumen, err := f.svc.ResumenGlobal(context.Background())
	require.NoError(t, err)

	assert.True(t, resumen.TotalIngresos.Equal(decimal.NewFromInt(300)))
	assert.True(t, resumen.TotalGastos.Equal(decimal.NewFromInt(80)))
	assert.True(t, resumen.Balance.Equal(decimal.NewFromInt(220)))
}

func TestDashboardStats(t *testing.T) {
	f := newFinanzasFixture()
	// 10 und × compra 2 / venta 5, 4 kg × compra 3 / venta 6
	p1 := seedProducto(f.productos, "Queso Llanero", 10, 5)
	p1.PrecioCompra = decimal.NewFromInt(2)
	p2 := seedProducto(f.productos, "Queso de Año", 4, 6)
	p2.PrecioCompra = decimal.NewFromInt(3)

	seedCobro(f.cobros, "Pedro Pérez", 45, model.CobroPendiente)
	seedCobro(f.cobros, "Ana Gómez", 99, model.CobroPagado)

	stats, err := f.svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProductos)
	// inventory at cost: 10*2 + 4*3 = 32
	assert.True(t, stats.ValorInventario.Equal(decimal.NewFromInt(32)), "valor: %s", stats.ValorInventario)
	// margin if everything sells: (10*5 + 4*6) − 32 = 42
	assert.True(t, stats.GananciaEstimada.Equal(decimal.NewFromInt(42)))
	// only the pending debt counts
	assert.True(t, stats.TotalPorCobrar.Equal(decimal.NewFromInt(45)))
}

func seedCobroEnFecha(r *stubCobroRepo, v *model.Venta, estado string, fecha time.Time) {
	c := &model.CuentaPorCobrar{
		ID:      uuid.New(),
		VentaID: v.ID,
		Cliente: v.Cliente,
		Monto:   v.Total,
		Estado:  estado,
		Fecha:   fecha,
	}
	r.cobros[c.ID] = c
}
