package tests

// In-memory repository stubs shared by the service tests. They emulate the
// persistence contracts closely enough for unit testing; transactional
// rollback itself is covered by the e2e suite against real Postgres.

import (
	"context"
	"errors"
	"time"

	"keso/internal/dto"
	"keso/internal/model"
	"keso/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	for _, existing := range r.productos {
		if existing.Nombre == p.Nombre {
			return errors.New("duplicate nombre")
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.FechaRegistro = time.Now()
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.productos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok || p.Cantidad.LessThan(cantidad) {
		return gorm.ErrRecordNotFound
	}
	p.Cantidad = p.Cantidad.Sub(cantidad)
	return nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func seedProducto(r *stubProductoRepo, nombre string, cantidad, precioVenta float64) *model.Producto {
	p := &model.Producto{
		ID:          uuid.New(),
		Nombre:      nombre,
		Cantidad:    decimal.NewFromFloat(cantidad),
		Unidad:      "und",
		PrecioVenta: decimal.NewFromFloat(precioVenta),
	}
	r.productos[p.ID] = p
	return p
}

// ── Venta ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas    map[uuid.UUID]*model.Venta
	ordenSeq  int
	errCreate error
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if r.errCreate != nil {
		return r.errCreate
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.Fecha = time.Now()
	for i := range v.Items {
		v.Items[i].ID = uuid.New()
		v.Items[i].VentaID = v.ID
	}
	if v.Cobro != nil {
		v.Cobro.ID = uuid.New()
		v.Cobro.VentaID = v.ID
		v.Cobro.Fecha = v.Fecha
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if !v.Fecha.Before(desde) && !v.Fecha.After(hasta) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) NextNumeroOrden(_ context.Context, _ *gorm.DB) (int, error) {
	r.ordenSeq++
	return r.ordenSeq, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── CuentaPorCobrar ──────────────────────────────────────────────────────────

type stubCobroRepo struct {
	cobros map[uuid.UUID]*model.CuentaPorCobrar
}

func newStubCobroRepo() *stubCobroRepo {
	return &stubCobroRepo{cobros: make(map[uuid.UUID]*model.CuentaPorCobrar)}
}

func (r *stubCobroRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CuentaPorCobrar, error) {
	c, ok := r.cobros[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCobroRepo) ListPendientes(_ context.Context) ([]model.CuentaPorCobrar, error) {
	var out []model.CuentaPorCobrar
	for _, c := range r.cobros {
		if c.Estado == model.CobroPendiente {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCobroRepo) ListPendientesEnRango(_ context.Context, desde, hasta time.Time) ([]model.CuentaPorCobrar, error) {
	var out []model.CuentaPorCobrar
	for _, c := range r.cobros {
		if c.Estado == model.CobroPendiente && !c.Fecha.Before(desde) && !c.Fecha.After(hasta) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCobroRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	c, ok := r.cobros[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Estado = estado
	return nil
}

var _ repository.CobroRepository = (*stubCobroRepo)(nil)

// ── Gasto ────────────────────────────────────────────────────────────────────

type stubGastoRepo struct {
	gastos map[uuid.UUID]*model.Gasto
}

func newStubGastoRepo() *stubGastoRepo {
	return &stubGastoRepo{gastos: make(map[uuid.UUID]*model.Gasto)}
}

func (r *stubGastoRepo) Create(_ context.Context, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Fecha.IsZero() {
		g.Fecha = time.Now()
	}
	r.gastos[g.ID] = g
	return nil
}

func (r *stubGastoRepo) List(_ context.Context) ([]model.Gasto, error) {
	out := make([]model.Gasto, 0, len(r.gastos))
	for _, g := range r.gastos {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGastoRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.Gasto, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if !g.Fecha.Before(desde) && !g.Fecha.After(hasta) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubGastoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.gastos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.gastos, id)
	return nil
}

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── MovimientoStock ──────────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) Create(_ context.Context, m *model.MovimientoStock) error {
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByProducto(_ context.Context, productoID uuid.UUID) ([]model.MovimientoStock, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

// ── Usuario ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.Username]; ok {
		return errors.New("duplicate username")
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.usuarios[username]
	if !ok || !u.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
