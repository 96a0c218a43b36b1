package service

import (
	"context"
	"errors"

	"keso/internal/dto"
	"keso/internal/model"
	"keso/internal/repository"
	"keso/internal/worker"

	"github.com/google/uuid"
)

var ErrCobroNoEncontrado = errors.New("cuenta por cobrar no encontrada")

type CobranzaService interface {
	ListarPendientes(ctx context.Context) ([]dto.CobroResponse, error)
	// MarcarPagada transitions pendiente → pagado. Calling it on an
	// already-paid receivable is an accepted no-op; the state never reverses.
	MarcarPagada(ctx context.Context, id uuid.UUID) error
	// EnviarRecordatorio queues a payment reminder email for a pending debt.
	EnviarRecordatorio(ctx context.Context, id uuid.UUID, email string) error
}

type cobranzaService struct {
	repo       repository.CobroRepository
	dispatcher *worker.Dispatcher
}

func NewCobranzaService(repo repository.CobroRepository, dispatcher *worker.Dispatcher) CobranzaService {
	return &cobranzaService{repo: repo, dispatcher: dispatcher}
}

func (s *cobranzaService) ListarPendientes(ctx context.Context) ([]dto.CobroResponse, error) {
	cobros, err := s.repo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CobroResponse, 0, len(cobros))
	for i := range cobros {
		resp = append(resp, *cobroToResponse(&cobros[i]))
	}
	return resp, nil
}

func (s *cobranzaService) MarcarPagada(ctx context.Context, id uuid.UUID) error {
	cobro, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrCobroNoEncontrado
	}
	if cobro.Estado == model.CobroPagado {
		return nil // idempotent re-settlement
	}
	return s.repo.UpdateEstado(ctx, id, model.CobroPagado)
}

func (s *cobranzaService) EnviarRecordatorio(ctx context.Context, id uuid.UUID, email string) error {
	cobro, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrCobroNoEncontrado
	}
	if cobro.Estado != model.CobroPendiente {
		return errors.New("la deuda ya fue saldada")
	}
	if s.dispatcher == nil {
		return nil
	}
	return s.dispatcher.EnqueueRecordatorio(ctx, worker.RecordatorioPayload{
		CobroID: cobro.ID.String(),
		Cliente: cobro.Cliente,
		Email:   email,
		Monto:   cobro.Monto.StringFixed(2),
	})
}

func cobroToResponse(c *model.CuentaPorCobrar) *dto.CobroResponse {
	resp := &dto.CobroResponse{
		ID:       c.ID.String(),
		VentaID:  c.VentaID.String(),
		Cliente:  c.Cliente,
		Telefono: c.Telefono,
		Monto:    c.Monto,
		Estado:   c.Estado,
		Fecha:    c.Fecha.Format("2006-01-02T15:04:05Z"),
	}
	if c.Venta != nil {
		resp.Venta = ventaToResponse(c.Venta)
		// a receivable only ever hangs off a credit sale; the nested venta
		// is loaded without its cobro to keep the JSON acyclic
		resp.Venta.Condicion = "credito"
		resp.Venta.Cobro = nil
	}
	return resp
}
