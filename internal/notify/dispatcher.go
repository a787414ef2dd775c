package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/SalonHelios/salon-scheduler/internal/models"
)

// Event is one outbound SMS tied to an appointment lifecycle transition.
type Event struct {
	AppointmentID uint
	Type          string // confirmation | reminder | cancellation
	Phone         string
	Message       string
}

// Queue accepts events without blocking the caller. Delivery is
// best-effort; the outcome never reaches the request that triggered it.
type Queue interface {
	Dispatch(Event)
}

// Dispatcher sends events from a background worker and records one sms_log
// row per processed event, sent or failed.
type Dispatcher struct {
	db     *gorm.DB
	sender Sender
	log    zerolog.Logger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(db *gorm.DB, sender Sender, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		db:     db,
		sender: sender,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		d.process(ev)
	}
}

func (d *Dispatcher) process(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	status := "sent"
	if err := d.sender.Send(ctx, ev.Phone, ev.Message); err != nil {
		status = "failed"
		d.log.Warn().
			Err(err).
			Uint("appointment_id", ev.AppointmentID).
			Str("type", ev.Type).
			Msg("sms send failed")
	}

	entry := models.SmsLog{
		AppointmentID: ev.AppointmentID,
		MessageType:   ev.Type,
		Status:        status,
	}
	if err := d.db.Create(&entry).Error; err != nil {
		d.log.Error().Err(err).Msg("sms log write failed")
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Queue full: drop rather than stall a booking request.
		d.log.Warn().
			Uint("appointment_id", ev.AppointmentID).
			Str("type", ev.Type).
			Msg("sms queue full, dropping event")
	}
}

// Stop drains the queue and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	close(d.queue)
	<-d.done
}

var _ Queue = (*Dispatcher)(nil)
