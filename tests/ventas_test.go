package tests

import (
	"context"
	"errors"
	"testing"

	"keso/internal/dto"
	"keso/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVentaFixture() (service.VentaService, *stubProductoRepo, *stubVentaRepo, *stubMovimientoRepo) {
	productoRepo := newStubProductoRepo()
	ventaRepo := newStubVentaRepo()
	movRepo := &stubMovimientoRepo{}
	svc := service.NewVentaService(ventaRepo, productoRepo, movRepo, nil)
	return svc, productoRepo, ventaRepo, movRepo
}

func TestRegistrarVentaDescuentaStockExacto(t *testing.T) {
	svc, productoRepo, _, movRepo := newVentaFixture()
	queso := seedProducto(productoRepo, "Queso Llanero", 10, 5.50)
	jamon := seedProducto(productoRepo, "Jamón Ahumado", 4, 8.00)

	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{
			{ProductoID: queso.ID.String(), Cantidad: decimal.NewFromInt(3)},
			{ProductoID: jamon.ID.String(), Cantidad: decimal.NewFromFloat(1.5)},
		},
		Vendedor:  "maria",
		Condicion: "contado",
	})
	require.NoError(t, err)

	assert.True(t, queso.Cantidad.Equal(decimal.NewFromInt(7)), "queso: %s", queso.Cantidad)
	assert.True(t, jamon.Cantidad.Equal(decimal.NewFromFloat(2.5)), "jamón: %s", jamon.Cantidad)

	// total from catalog prices: 3*5.50 + 1.5*8.00 = 28.50
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(28.5)), "total: %s", resp.Total)
	assert.Len(t, resp.Productos, 2)
	assert.Equal(t, "contado", resp.Condicion)
	assert.Nil(t, resp.Cobro)

	// one audit row per cart line, negative for an outgoing sale
	require.Len(t, movRepo.movimientos, 2)
	assert.Equal(t, "venta", movRepo.movimientos[0].Tipo)
	assert.True(t, movRepo.movimientos[0].Cantidad.IsNegative())
}

func TestRegistrarVentaNumeraOrdenesSecuencialmente(t *testing.T) {
	svc, productoRepo, _, _ := newVentaFixture()
	p := seedProducto(productoRepo, "Queso de Mano", 100, 4.00)

	for i, esperado := range []string{"ORD-0001", "ORD-0002", "ORD-0003"} {
		resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
			Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(1)}},
			Condicion: "contado",
		})
		require.NoError(t, err, "venta %d", i+1)
		assert.Equal(t, esperado, resp.Orden)
	}
}

func TestRegistrarVentaRecalculaTotalDelCatalogo(t *testing.T) {
	svc, productoRepo, _, _ := newVentaFixture()
	p := seedProducto(productoRepo, "Suero", 10, 3.25)

	// the client claims the sale costs one cent
	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(2)}},
		Total:     decimal.NewFromFloat(0.01),
		Condicion: "contado",
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(6.50)), "total: %s", resp.Total)
}

func TestRegistrarVentaStockInsuficiente(t *testing.T) {
	svc, productoRepo, _, movRepo := newVentaFixture()
	p := seedProducto(productoRepo, "Queso Guayanés", 2, 6.00)

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(5)}},
		Condicion: "contado",
	})
	require.Error(t, err)

	var stockErr *service.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Queso Guayanés", stockErr.Producto)
	assert.True(t, stockErr.Disponible.Equal(decimal.NewFromInt(2)))

	// nothing moved
	assert.True(t, p.Cantidad.Equal(decimal.NewFromInt(2)), "stock: %s", p.Cantidad)
	assert.Empty(t, movRepo.movimientos)
}

func TestRegistrarVentaCarritoVacio(t *testing.T) {
	svc, _, ventaRepo, _ := newVentaFixture()

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{Condicion: "contado"})
	assert.ErrorIs(t, err, service.ErrCarritoVacio)
	assert.Empty(t, ventaRepo.ventas)
}

func TestRegistrarVentaProductoInexistente(t *testing.T) {
	svc, _, ventaRepo, _ := newVentaFixture()

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: uuid.NewString(), Cantidad: decimal.NewFromInt(1)}},
		Condicion: "contado",
	})
	var notFound *service.ProductoNoEncontradoError
	assert.ErrorAs(t, err, &notFound)
	assert.Empty(t, ventaRepo.ventas)
}

func TestRegistrarVentaCreditoCreaCuentaPorCobrar(t *testing.T) {
	svc, productoRepo, ventaRepo, _ := newVentaFixture()
	p := seedProducto(productoRepo, "Queso Paisa", 20, 5.00)

	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(4)}},
		Cliente:   "Pedro Pérez",
		Telefono:  "0414-5551234",
		Condicion: "credito",
	})
	require.NoError(t, err)

	assert.Equal(t, "credito", resp.Condicion)
	require.NotNil(t, resp.Cobro)
	assert.Equal(t, "pendiente", resp.Cobro.Estado)
	assert.Equal(t, "Pedro Pérez", resp.Cobro.Cliente)
	assert.True(t, resp.Cobro.Monto.Equal(decimal.NewFromInt(20)), "monto: %s", resp.Cobro.Monto)

	require.Len(t, ventaRepo.ventas, 1)
	for _, v := range ventaRepo.ventas {
		require.NotNil(t, v.Cobro)
		assert.Equal(t, v.ID, v.Cobro.VentaID)
		assert.True(t, v.Cobro.Monto.Equal(v.Total))
	}
}

func TestRegistrarVentaCreditoRechazaConsumidorFinal(t *testing.T) {
	svc, productoRepo, ventaRepo, movRepo := newVentaFixture()
	p := seedProducto(productoRepo, "Ricotta", 8, 2.00)

	for _, cliente := range []string{"", "   ", service.ClienteDefault} {
		_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
			Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(1)}},
			Cliente:   cliente,
			Condicion: "credito",
		})
		assert.ErrorIs(t, err, service.ErrClienteCredito, "cliente %q", cliente)
	}

	// rejected before any write
	assert.Empty(t, ventaRepo.ventas)
	assert.Empty(t, movRepo.movimientos)
	assert.True(t, p.Cantidad.Equal(decimal.NewFromInt(8)))
}

func TestRegistrarVentaContadoSinClienteUsaConsumidorFinal(t *testing.T) {
	svc, productoRepo, _, _ := newVentaFixture()
	p := seedProducto(productoRepo, "Mozzarella", 5, 7.00)

	resp, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(1)}},
		Condicion: "contado",
	})
	require.NoError(t, err)
	assert.Equal(t, service.ClienteDefault, resp.Cliente)
}

func TestRegistrarVentaCantidadInvalida(t *testing.T) {
	svc, productoRepo, _, _ := newVentaFixture()
	p := seedProducto(productoRepo, "Parmesano", 5, 12.00)

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.Zero}},
		Condicion: "contado",
	})
	assert.Error(t, err)

	_, err = svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(-1)}},
		Condicion: "contado",
	})
	assert.Error(t, err)
}

func TestRegistrarVentaFallaPersistencia(t *testing.T) {
	svc, productoRepo, ventaRepo, _ := newVentaFixture()
	p := seedProducto(productoRepo, "Queso Ahumado", 5, 9.00)
	ventaRepo.errCreate = errors.New("db down")

	_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(1)}},
		Condicion: "contado",
	})
	require.Error(t, err)
	// the decrement never runs when the sale itself cannot be written
	assert.True(t, p.Cantidad.Equal(decimal.NewFromInt(5)))
}

func TestListVentasPaginaPorDefecto(t *testing.T) {
	svc, productoRepo, _, _ := newVentaFixture()
	p := seedProducto(productoRepo, "Telita", 50, 3.00)

	for i := 0; i < 3; i++ {
		_, err := svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
			Productos: []dto.ItemCarritoRequest{{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(1)}},
			Condicion: "contado",
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListVentas(context.Background(), dto.VentaFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
}
