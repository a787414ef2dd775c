package appointment

import (
	"context"

	domain "github.com/SalonHelios/salon-scheduler/internal/domain/appointment"
	"github.com/SalonHelios/salon-scheduler/internal/httperr"
)

// DeleteAppointment hard-deletes an appointment together with its link
// rows. No tombstone is kept; the sms_log rows stay.
type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.GetAppointment(ctx, id); err != nil {
		return httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}

	return uc.repo.DeleteAppointment(ctx, id)
}
