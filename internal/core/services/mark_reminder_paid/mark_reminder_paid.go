package markreminderpaid

import (
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	ReminderID reminder.ID
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log       logging.Logger
	reminders reminder.Repository
	events    reminder.EventPublisher
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
	events reminder.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &service{log: log, reminders: reminders, events: events}
}

// Run flips the reminder to its terminal paid state. The flip is one way and
// idempotent, so concurrent duplicate calls are safe.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	paidReminder, err := s.reminders.MarkPaid(ctx, input.ReminderID)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			s.log.Info(
				ctx,
				"Reminder to mark paid does not exist.",
				logging.Entry("reminderID", input.ReminderID),
			)
		default:
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		}
		return result, err
	}

	if err := s.events.PublishPaid(ctx, paidReminder); err != nil {
		s.log.Warning(
			ctx,
			"Could not publish reminder paid event.",
			logging.Entry("reminderID", paidReminder.ID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"Reminder has been marked paid.",
		logging.Entry("reminderID", paidReminder.ID),
		logging.Entry("userID", paidReminder.UserID),
	)
	result.Reminder = paidReminder
	return result, nil
}
