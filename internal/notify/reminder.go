package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/SalonHelios/salon-scheduler/internal/domain/appointment"
	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
)

// ReminderSweep sends one reminder per linked client for every scheduled
// appointment happening tomorrow. It is fired daily by the cron entry.
type ReminderSweep struct {
	repo      domain.Repository
	queue     Queue
	messenger Messenger
	log       zerolog.Logger
}

func NewReminderSweep(
	repo domain.Repository,
	queue Queue,
	messenger Messenger,
	log zerolog.Logger,
) *ReminderSweep {
	return &ReminderSweep{
		repo:      repo,
		queue:     queue,
		messenger: messenger,
		log:       log,
	}
}

// Run dispatches reminders for the day after the day containing now and
// returns how many were queued.
func (s *ReminderSweep) Run(ctx context.Context, now time.Time) (int, error) {
	start := timeutil.Tomorrow(now)
	end := start.Add(24 * time.Hour)

	appointments, err := s.repo.ListScheduledBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, ap := range appointments {
		message := s.messenger.Reminder(ap.Title, ap.StartTime, ap.User.Name)
		for _, client := range ap.Clients {
			s.queue.Dispatch(Event{
				AppointmentID: ap.ID,
				Type:          TypeReminder,
				Phone:         client.Phone,
				Message:       message,
			})
			sent++
		}
	}

	s.log.Info().
		Str("date", timeutil.FormatDate(start)).
		Int("reminders", sent).
		Msg("reminder sweep finished")

	return sent, nil
}
