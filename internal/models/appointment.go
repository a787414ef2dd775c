package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the service name frozen at booking time.
	Title string `gorm:"size:100;not null" json:"title"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	// Naive local wall-clock, minute precision. No UTC offset anywhere.
	StartTime time.Time `json:"start_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Paid   bool   `gorm:"default:false" json:"paid"`

	// Snapshot of Service.MaxParticipants at booking time.
	MaxParticipants int `gorm:"default:1" json:"max_participants"`

	Clients []Client `gorm:"many2many:appointment_clients;" json:"clients"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentClient is the join row between an appointment and a client.
// Rows are removed with their appointment; a client with link rows cannot
// be deleted.
type AppointmentClient struct {
	AppointmentID uint `gorm:"primaryKey" json:"appointment_id"`
	ClientID      uint `gorm:"primaryKey" json:"client_id"`
}
