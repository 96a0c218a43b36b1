package service

import (
	"context"
	"errors"

	"keso/internal/dto"
	"keso/internal/model"
	"keso/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGastoNoEncontrado = errors.New("gasto no encontrado")

type GastoService interface {
	Crear(ctx context.Context, req dto.CrearGastoRequest) (*dto.GastoResponse, error)
	Listar(ctx context.Context) ([]dto.GastoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type gastoService struct {
	repo repository.GastoRepository
}

func NewGastoService(repo repository.GastoRepository) GastoService {
	return &gastoService{repo: repo}
}

func (s *gastoService) Crear(ctx context.Context, req dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	gasto := &model.Gasto{
		Concepto:  req.Concepto,
		Monto:     req.Monto,
		Categoria: req.Categoria,
		Tipo:      req.Tipo,
	}
	if gasto.Categoria == "" {
		gasto.Categoria = "General"
	}
	if gasto.Tipo == "" {
		gasto.Tipo = "Variable"
	}
	if err := s.repo.Create(ctx, gasto); err != nil {
		return nil, err
	}
	return gastoToResponse(gasto), nil
}

func (s *gastoService) Listar(ctx context.Context) ([]dto.GastoResponse, error) {
	gastos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		resp = append(resp, *gastoToResponse(&gastos[i]))
	}
	return resp, nil
}

func (s *gastoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGastoNoEncontrado
		}
		return err
	}
	return nil
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:        g.ID.String(),
		Concepto:  g.Concepto,
		Monto:     g.Monto,
		Categoria: g.Categoria,
		Tipo:      g.Tipo,
		Fecha:     g.Fecha.Format("2006-01-02T15:04:05Z"),
	}
}
