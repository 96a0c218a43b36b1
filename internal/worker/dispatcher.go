package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const (
	QueueTickets       = "jobs:tickets"
	QueueRecordatorios = "jobs:recordatorios"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// TicketPayload drives the PDF ticket worker after a committed sale.
type TicketPayload struct {
	VentaID      string `json:"venta_id"`
	ClienteEmail string `json:"cliente_email,omitempty"`
}

// RecordatorioPayload drives the payment reminder worker.
type RecordatorioPayload struct {
	CobroID string `json:"cobro_id"`
	Cliente string `json:"cliente"`
	Email   string `json:"email"`
	Monto   string `json:"monto"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueTicket pushes a ticket-PDF job. Best-effort: callers log and move
// on when this fails — a queue hiccup never fails a committed sale.
func (d *Dispatcher) EnqueueTicket(ctx context.Context, payload TicketPayload) error {
	return d.enqueue(ctx, QueueTickets, "ticket", payload)
}

// EnqueueRecordatorio pushes a payment reminder job.
func (d *Dispatcher) EnqueueRecordatorio(ctx context.Context, payload RecordatorioPayload) error {
	return d.enqueue(ctx, QueueRecordatorios, "recordatorio", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}
