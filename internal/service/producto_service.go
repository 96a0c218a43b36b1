package service

import (
	"context"
	"errors"

	"keso/internal/dto"
	"keso/internal/model"
	"keso/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrProductoNoEncontrado = errors.New("producto no encontrado")

type ProductoService interface {
	Crear(ctx context.Context, form dto.ProductoForm, imagen *string) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, form dto.ProductoForm, imagen *string) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ListarMovimientos(ctx context.Context, productoID uuid.UUID) ([]dto.MovimientoResponse, error)
}

type productoService struct {
	repo           repository.ProductoRepository
	movimientoRepo repository.MovimientoStockRepository
}

func NewProductoService(repo repository.ProductoRepository, movimientoRepo repository.MovimientoStockRepository) ProductoService {
	return &productoService{repo: repo, movimientoRepo: movimientoRepo}
}

func (s *productoService) Crear(ctx context.Context, form dto.ProductoForm, imagen *string) (*dto.ProductoResponse, error) {
	if form.Cantidad.IsNegative() {
		return nil, errors.New("la cantidad no puede ser negativa")
	}
	p := &model.Producto{
		Nombre:       form.Nombre,
		Cantidad:     form.Cantidad,
		Unidad:       form.Unidad,
		PrecioCompra: form.PrecioCompra,
		PrecioVenta:  form.PrecioVenta,
		Categoria:    form.Categoria,
		Imagen:       imagen,
	}
	if p.Unidad == "" {
		p.Unidad = "und"
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if p.Cantidad.IsPositive() {
		_ = s.movimientoRepo.Create(ctx, &model.MovimientoStock{
			ProductoID:    p.ID,
			Tipo:          "alta",
			Cantidad:      p.Cantidad,
			StockAnterior: decimal.Zero,
			StockNuevo:    p.Cantidad,
			Motivo:        "Alta de producto",
		})
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, form dto.ProductoForm, imagen *string) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	if form.Cantidad.IsNegative() {
		return nil, errors.New("la cantidad no puede ser negativa")
	}

	anterior := p.Cantidad

	p.Nombre = form.Nombre
	p.Cantidad = form.Cantidad
	if form.Unidad != "" {
		p.Unidad = form.Unidad
	}
	p.PrecioCompra = form.PrecioCompra
	p.PrecioVenta = form.PrecioVenta
	p.Categoria = form.Categoria
	if imagen != nil {
		p.Imagen = imagen
	} else if form.ImagenExisting != "" {
		existing := form.ImagenExisting
		p.Imagen = &existing
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	// Manual quantity edits leave an audit trail, same as sales do
	if !anterior.Equal(p.Cantidad) {
		_ = s.movimientoRepo.Create(ctx, &model.MovimientoStock{
			ProductoID:    p.ID,
			Tipo:          "ajuste_manual",
			Cantidad:      p.Cantidad.Sub(anterior),
			StockAnterior: anterior,
			StockNuevo:    p.Cantidad,
			Motivo:        "Edición de catálogo",
		})
	}
	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	return nil
}

func (s *productoService) ListarMovimientos(ctx context.Context, productoID uuid.UUID) ([]dto.MovimientoResponse, error) {
	movs, err := s.movimientoRepo.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		resp = append(resp, dto.MovimientoResponse{
			ID:            m.ID.String(),
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			Fecha:         m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return resp, nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:            p.ID.String(),
		Nombre:        p.Nombre,
		Cantidad:      p.Cantidad,
		Unidad:        p.Unidad,
		PrecioCompra:  p.PrecioCompra,
		PrecioVenta:   p.PrecioVenta,
		Categoria:     p.Categoria,
		Imagen:        p.Imagen,
		FechaRegistro: p.FechaRegistro.Format("2006-01-02T15:04:05Z"),
	}
}
