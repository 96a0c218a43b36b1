package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"keso/internal/infra"
)

// RecordatorioWorker mails a payment reminder for a pending receivable.
type RecordatorioWorker struct {
	mailer       *infra.Mailer
	businessName string
}

func NewRecordatorioWorker(mailer *infra.Mailer, businessName string) *RecordatorioWorker {
	return &RecordatorioWorker{mailer: mailer, businessName: businessName}
}

func (w *RecordatorioWorker) Process(_ context.Context, payload json.RawMessage) error {
	var p RecordatorioPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("recordatorio: bad payload: %w", err)
	}
	if w.mailer == nil {
		return nil
	}

	subject := fmt.Sprintf("%s — Recordatorio de pago pendiente", w.businessName)
	body := fmt.Sprintf(
		"Estimado(a) %s,\n\nLe recordamos que mantiene un saldo pendiente de %s.\nPuede acercarse al local para saldarlo cuando guste.\n\n%s",
		p.Cliente, p.Monto, w.businessName)
	return w.mailer.Send(p.Email, subject, body, "")
}
