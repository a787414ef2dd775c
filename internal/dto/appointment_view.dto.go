package dto

import (
	"github.com/SalonHelios/salon-scheduler/internal/models"
	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
)

type ClientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// AppointmentView is the wire shape of an appointment: joined service and
// employee fields, embedded clients, and the start time as a naive local
// timestamp string.
type AppointmentView struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	ServiceID       uint            `json:"service_id"`
	ServiceName     string          `json:"service_name"`
	DurationMin     int             `json:"duration_min"`
	IsGroup         bool            `json:"is_group"`
	UserID          uint            `json:"user_id"`
	EmployeeName    string          `json:"employee_name"`
	StartTime       string          `json:"start_time"`
	Status          string          `json:"status"`
	Paid            bool            `json:"paid"`
	MaxParticipants int             `json:"max_participants"`
	Clients         []ClientSummary `json:"clients"`
}

func NewAppointmentView(ap *models.Appointment) AppointmentView {
	clients := make([]ClientSummary, 0, len(ap.Clients))
	for _, c := range ap.Clients {
		clients = append(clients, ClientSummary{
			ID:    c.ID,
			Name:  c.Name,
			Phone: c.Phone,
			Email: c.Email,
		})
	}

	return AppointmentView{
		ID:              ap.ID,
		Title:           ap.Title,
		ServiceID:       ap.ServiceID,
		ServiceName:     ap.Service.Name,
		DurationMin:     ap.Service.DurationMin,
		IsGroup:         ap.Service.IsGroup,
		UserID:          ap.UserID,
		EmployeeName:    ap.User.Name,
		StartTime:       timeutil.FormatDateTime(ap.StartTime),
		Status:          ap.Status,
		Paid:            ap.Paid,
		MaxParticipants: ap.MaxParticipants,
		Clients:         clients,
	}
}
