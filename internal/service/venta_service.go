package service

import (
	"context"
	"fmt"
	"strings"

	"keso/internal/dto"
	"keso/internal/model"
	"keso/internal/repository"
	"keso/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClienteDefault is the placeholder the shell uses for anonymous cash
// customers; it is not a real name, so credit sales reject it.
const ClienteDefault = "Consumidor Final"

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo           repository.VentaRepository
	productoRepo   repository.ProductoRepository
	movimientoRepo repository.MovimientoStockRepository
	dispatcher     *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	movimientoRepo repository.MovimientoStockRepository,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:           repo,
		productoRepo:   productoRepo,
		movimientoRepo: movimientoRepo,
		dispatcher:     dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// The checkout transaction. All-or-nothing:
//   1. Validate the cart and the credit-sale customer rule
//   2. Resolve cart lines against the catalog, compute line and total amounts
//   3. BEGIN TX: nextval numero de orden, create venta + items (+ cuenta por
//      cobrar when condicion = "credito"), decrement stock conditionally,
//      write movimientos de stock
//   4. COMMIT — any failure rolls everything back, no partial state
//   5. (async, best-effort) enqueue ticket PDF job

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Productos) == 0 {
		return nil, ErrCarritoVacio
	}

	cliente := strings.TrimSpace(req.Cliente)
	if cliente == "" {
		cliente = ClienteDefault
	}
	if req.Condicion == "credito" && cliente == ClienteDefault {
		return nil, ErrClienteCredito
	}

	// Resolve products and calculate totals (pre-flight, outside TX).
	// PrecioVenta comes from the catalog — the client copy of total is
	// never trusted.
	type lineaResuelta struct {
		productoID uuid.UUID
		nombre     string
		precio     decimal.Decimal
		cantidad   decimal.Decimal
		subtotal   decimal.Decimal
	}

	var resueltas []lineaResuelta
	total := decimal.Zero

	for _, item := range req.Productos {
		if !item.Cantidad.IsPositive() {
			return nil, fmt.Errorf("cantidad inválida para producto %s", item.ProductoID)
		}
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, &ProductoNoEncontradoError{ProductoID: item.ProductoID}
		}
		subtotal := p.PrecioVenta.Mul(item.Cantidad)
		total = total.Add(subtotal)
		resueltas = append(resueltas, lineaResuelta{
			productoID: pid,
			nombre:     p.Nombre,
			precio:     p.PrecioVenta,
			cantidad:   item.Cantidad,
			subtotal:   subtotal,
		})
	}

	// ACID transaction
	var venta model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		num, err := s.repo.NextNumeroOrden(ctx, tx)
		if err != nil {
			return err
		}

		venta = model.Venta{
			NumeroOrden: fmt.Sprintf("ORD-%04d", num),
			Total:       total,
			Vendedor:    req.Vendedor,
			Cliente:     cliente,
		}
		for _, l := range resueltas {
			venta.Items = append(venta.Items, model.VentaItem{
				ProductoID:     l.productoID,
				Nombre:         l.nombre,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
				Subtotal:       l.subtotal,
			})
		}
		if req.Condicion == "credito" {
			venta.Cobro = &model.CuentaPorCobrar{
				Cliente:  cliente,
				Telefono: req.Telefono,
				Monto:    total,
				Estado:   model.CobroPendiente,
			}
		}

		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}

		// Conditional stock decrements. A failed guard means someone sold
		// the stock between pre-flight and here — abort, roll back.
		for _, l := range resueltas {
			antes := decimal.Zero
			if prod, err := s.productoRepo.FindByIDTx(tx, l.productoID); err == nil {
				antes = prod.Cantidad
			}

			if err := s.productoRepo.DescontarStockTx(tx, l.productoID, l.cantidad); err != nil {
				return &StockInsuficienteError{Producto: l.nombre, Disponible: antes}
			}

			ventaRef := venta.ID
			mov := &model.MovimientoStock{
				ProductoID:    l.productoID,
				Tipo:          "venta",
				Cantidad:      l.cantidad.Neg(),
				StockAnterior: antes,
				StockNuevo:    antes.Sub(l.cantidad),
				Motivo:        fmt.Sprintf("Venta %s", venta.NumeroOrden),
				ReferenciaID:  &ventaRef,
			}
			if err := s.movimientoRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async ticket PDF — fire & forget, a queue hiccup must not fail the sale
	if s.dispatcher != nil {
		payload := worker.TicketPayload{VentaID: venta.ID.String()}
		if req.ClienteEmail != nil {
			payload.ClienteEmail = *req.ClienteEmail
		}
		_ = s.dispatcher.EnqueueTicket(ctx, payload)
	}

	return ventaToResponse(&venta), nil
}

// ListVentas returns a paginated sales history, newest first, optionally
// filtered by date.
func (s *ventaService) ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, dto.ItemVentaResponse{
			ProductoID:     item.ProductoID.String(),
			Nombre:         item.Nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		})
	}
	condicion := "contado"
	var cobro *dto.CobroResponse
	if v.Cobro != nil {
		condicion = "credito"
		cobro = cobroToResponse(v.Cobro)
	}
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		Orden:     v.NumeroOrden,
		Total:     v.Total,
		Vendedor:  v.Vendedor,
		Cliente:   v.Cliente,
		Condicion: condicion,
		Productos: items,
		Cobro:     cobro,
		Fecha:     v.Fecha.Format("2006-01-02T15:04:05Z"),
	}
}
