package notify

import (
	"fmt"
	"time"

	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
)

// Message types as recorded in the sms_log table.
const (
	TypeConfirmation = "confirmation"
	TypeReminder     = "reminder"
	TypeCancellation = "cancellation"
)

// Messenger renders the three SMS templates.
type Messenger struct {
	SalonName string
}

func (m Messenger) Confirmation(clientName, serviceName string, start time.Time, employeeName string) string {
	return fmt.Sprintf(
		"Dear %s,\nYour appointment for %s is scheduled for %s at %s with %s.\n%s",
		clientName,
		serviceName,
		timeutil.DisplayDate(start),
		timeutil.DisplayTime(start),
		employeeName,
		m.SalonName,
	)
}

func (m Messenger) Reminder(serviceName string, start time.Time, employeeName string) string {
	return fmt.Sprintf(
		"Reminder: you have an appointment for %s tomorrow at %s with %s.\n%s",
		serviceName,
		timeutil.DisplayTime(start),
		employeeName,
		m.SalonName,
	)
}

func (m Messenger) Cancellation(serviceName string, start time.Time) string {
	return fmt.Sprintf(
		"Your appointment for %s scheduled for %s at %s has been cancelled.\nCall us to book a new one.\n%s",
		serviceName,
		timeutil.DisplayDate(start),
		timeutil.DisplayTime(start),
		m.SalonName,
	)
}
