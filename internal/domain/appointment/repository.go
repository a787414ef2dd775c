package appointment

import (
	"context"
	"time"

	"github.com/SalonHelios/salon-scheduler/internal/models"
)

// Repository is everything the scheduling workflows need from storage.
type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Employee --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListUsers(
		ctx context.Context,
	) ([]models.User, error)

	// -------- Client --------
	FindClientByPhone(
		ctx context.Context,
		phone string,
	) (*models.Client, error)

	UpdateClientName(
		ctx context.Context,
		clientID uint,
		name string,
	) error

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	LinkClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointmentFields(
		ctx context.Context,
		id uint,
		fields map[string]any,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListScheduledBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
