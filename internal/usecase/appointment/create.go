package appointment

import (
	"context"
	"fmt"

	domain "github.com/SalonHelios/salon-scheduler/internal/domain/appointment"
	"github.com/SalonHelios/salon-scheduler/internal/httperr"
	"github.com/SalonHelios/salon-scheduler/internal/models"
	"github.com/SalonHelios/salon-scheduler/internal/notify"
	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
	"github.com/SalonHelios/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ClientInput struct {
	Name  string
	Phone string
	Email string
}

type CreateAppointmentInput struct {
	ServiceID uint
	UserID    uint // acting employee unless overridden by the request
	StartTime string
	Clients   []ClientInput
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment books an appointment and links its clients.
//
// Known limitations, kept on purpose: overlapping appointments for the same
// employee are accepted without complaint, and the appointment row, client
// rows and link rows are written as separate statements with no wrapping
// transaction.
type CreateAppointment struct {
	repo      domain.Repository
	queue     notify.Queue
	messenger notify.Messenger
}

func NewCreateAppointment(
	repo domain.Repository,
	queue notify.Queue,
	messenger notify.Messenger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		queue:     queue,
		messenger: messenger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (uint, error) {

	if in.ServiceID == 0 || in.StartTime == "" || len(in.Clients) == 0 {
		return 0, httperr.ErrValidation("missing_fields", "Service, start time and at least one client are required.")
	}

	start, err := timeutil.ParseDateTime(in.StartTime)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_start_time", "Start time is not a valid local timestamp.")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return 0, httperr.ErrNotFound("service_not_found", "Service not found.")
	}

	employee, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return 0, httperr.ErrNotFound("employee_not_found", "Employee not found.")
	}

	// Group capacity only. Single-service bookings are constrained to one
	// client by the UI, not here.
	if service.IsGroup && len(in.Clients) > service.MaxParticipants {
		return 0, httperr.ErrCapacity(
			"max_participants_exceeded",
			fmt.Sprintf("Maximum number of participants is %d.", service.MaxParticipants),
		)
	}

	for i := range in.Clients {
		in.Clients[i].Phone = validators.NormalizePhone(in.Clients[i].Phone)
		if in.Clients[i].Name == "" || in.Clients[i].Phone == "" {
			return 0, httperr.ErrValidation("client_incomplete", "Every client needs a name and a phone number.")
		}
	}

	ap := &models.Appointment{
		Title:           service.Name,
		ServiceID:       service.ID,
		UserID:          employee.ID,
		StartTime:       start,
		Status:          string(domain.InitialStatus()),
		Paid:            false,
		MaxParticipants: service.MaxParticipants,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return 0, err
	}

	for _, entry := range in.Clients {
		client, err := uc.resolveClient(ctx, entry)
		if err != nil {
			return 0, err
		}

		if err := uc.repo.LinkClient(ctx, ap.ID, client.ID); err != nil {
			return 0, err
		}

		uc.queue.Dispatch(notify.Event{
			AppointmentID: ap.ID,
			Type:          notify.TypeConfirmation,
			Phone:         client.Phone,
			Message:       uc.messenger.Confirmation(client.Name, service.Name, start, employee.Name),
		})
	}

	return ap.ID, nil
}

// resolveClient matches on phone. A hit reuses the row and overwrites the
// stored name with the submitted one (last write wins); a miss creates a
// new client.
func (uc *CreateAppointment) resolveClient(
	ctx context.Context,
	entry ClientInput,
) (*models.Client, error) {

	if existing, err := uc.repo.FindClientByPhone(ctx, entry.Phone); err == nil {
		if existing.Name != entry.Name {
			if err := uc.repo.UpdateClientName(ctx, existing.ID, entry.Name); err != nil {
				return nil, err
			}
			existing.Name = entry.Name
		}
		return existing, nil
	}

	client := &models.Client{
		Name:  entry.Name,
		Phone: entry.Phone,
		Email: entry.Email,
	}
	if err := uc.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
