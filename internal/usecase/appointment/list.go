package appointment

import (
	"context"
	"time"

	domain "github.com/SalonHelios/salon-scheduler/internal/domain/appointment"
	"github.com/SalonHelios/salon-scheduler/internal/dto"
	"github.com/SalonHelios/salon-scheduler/internal/httperr"
	"github.com/SalonHelios/salon-scheduler/internal/models"
)

// GetAppointment returns one appointment with its joined fields and
// ordered client list.
type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (dto.AppointmentView, error) {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return dto.AppointmentView{}, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	return dto.NewAppointmentView(ap), nil
}

// ListAppointments is the calendar read path: every appointment whose
// start falls in [start, end), ordered by start time.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForPeriod(ctx, start, end)
}

// EmployeeColumns fixes the calendar column order: employees by id.
func (uc *ListAppointments) EmployeeColumns(ctx context.Context) ([]uint, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]uint, 0, len(users))
	for _, u := range users {
		columns = append(columns, u.ID)
	}
	return columns, nil
}
