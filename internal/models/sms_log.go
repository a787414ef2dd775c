package models

import "time"

// SmsLog is a write-only audit trail of outbound messages. Nothing in the
// application reads it back.
type SmsLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint   `json:"appointment_id"`
	MessageType   string `gorm:"size:20" json:"message_type"` // confirmation | reminder | cancellation
	Status        string `gorm:"size:20" json:"status"`       // sent | failed

	SentAt time.Time `gorm:"autoCreateTime" json:"sent_at"`
}
