package appointment

import (
	"context"

	domain "github.com/SalonHelios/salon-scheduler/internal/domain/appointment"
	"github.com/SalonHelios/salon-scheduler/internal/httperr"
	"github.com/SalonHelios/salon-scheduler/internal/models"
	"github.com/SalonHelios/salon-scheduler/internal/notify"
	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
)

type UpdateAppointmentInput struct {
	Status    *string
	StartTime *string
	Paid      *bool
}

// UpdateAppointment applies a partial update over {status, start, paid}.
// Statuses are unordered labels, so any label may replace any other; the
// only transition with a side effect is entering cancelled, which notifies
// every linked client after the write.
type UpdateAppointment struct {
	repo      domain.Repository
	queue     notify.Queue
	messenger notify.Messenger
}

func NewUpdateAppointment(
	repo domain.Repository,
	queue notify.Queue,
	messenger notify.Messenger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		queue:     queue,
		messenger: messenger,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}

	if in.Status == nil && in.StartTime == nil && in.Paid == nil {
		return nil, httperr.ErrValidation("nothing_to_update", "No fields supplied.")
	}

	fields := map[string]any{}
	start := ap.StartTime

	if in.StartTime != nil {
		parsed, err := timeutil.ParseDateTime(*in.StartTime)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_start_time", "Start time is not a valid local timestamp.")
		}
		start = parsed
		fields["start_time"] = parsed
	}

	if in.Status != nil {
		if !domain.Status(*in.Status).Valid() {
			return nil, httperr.ErrValidation("invalid_status", "Unknown appointment status.")
		}
		fields["status"] = *in.Status
	}

	if in.Paid != nil {
		fields["paid"] = *in.Paid
	}

	if err := uc.repo.UpdateAppointmentFields(ctx, id, fields); err != nil {
		return nil, err
	}

	cancelling := in.Status != nil &&
		domain.Status(*in.Status) == domain.StatusCancelled &&
		domain.Status(ap.Status) != domain.StatusCancelled

	if cancelling {
		message := uc.messenger.Cancellation(ap.Title, start)
		for _, client := range ap.Clients {
			uc.queue.Dispatch(notify.Event{
				AppointmentID: ap.ID,
				Type:          notify.TypeCancellation,
				Phone:         client.Phone,
				Message:       message,
			})
		}
	}

	return uc.repo.GetAppointment(ctx, id)
}
