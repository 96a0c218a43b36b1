package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"keso/internal/infra"
	"keso/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TicketWorker renders the PDF receipt for a committed sale and, when the
// request carried a customer email, mails it. Runs strictly after commit:
// nothing here can affect the sale itself.
type TicketWorker struct {
	ventaRepo    repository.VentaRepository
	mailer       *infra.Mailer
	storagePath  string
	businessName string
}

func NewTicketWorker(ventaRepo repository.VentaRepository, mailer *infra.Mailer, storagePath, businessName string) *TicketWorker {
	return &TicketWorker{
		ventaRepo:    ventaRepo,
		mailer:       mailer,
		storagePath:  storagePath,
		businessName: businessName,
	}
}

func (w *TicketWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var p TicketPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("ticket: bad payload: %w", err)
	}
	id, err := uuid.Parse(p.VentaID)
	if err != nil {
		return fmt.Errorf("ticket: venta_id inválido: %w", err)
	}

	venta, err := w.ventaRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("ticket: venta %s no encontrada: %w", p.VentaID, err)
	}

	pdfPath, err := infra.GenerateTicketPDF(venta, w.businessName, w.storagePath)
	if err != nil {
		return err
	}
	log.Info().Str("orden", venta.NumeroOrden).Str("pdf", pdfPath).Msg("ticket generated")

	if p.ClienteEmail == "" || w.mailer == nil {
		return nil
	}
	subject := fmt.Sprintf("%s — Ticket %s", w.businessName, venta.NumeroOrden)
	body := fmt.Sprintf("Gracias por su compra. Adjuntamos el comprobante de la orden %s por un total de %s.",
		venta.NumeroOrden, venta.Total.StringFixed(2))
	return w.mailer.Send(p.ClienteEmail, subject, body, pdfPath)
}
