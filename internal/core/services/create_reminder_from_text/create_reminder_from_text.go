package createreminderfromtext

import (
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	"context"
	"errors"
	"strings"
)

type Input struct {
	UserID  user.ID
	Message string
}

func (i Input) GetRateLimitKey() string {
	return "create-reminder-from-text::" + i.UserID.String()
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log        logging.Logger
	extractor  reminder.TextExtractor
	normalizer *reminder.Normalizer
	reminders  reminder.Repository
	events     reminder.EventPublisher
}

func New(
	log logging.Logger,
	extractor reminder.TextExtractor,
	normalizer *reminder.Normalizer,
	reminders reminder.Repository,
	events reminder.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if extractor == nil {
		panic(e.NewNilArgumentError("extractor"))
	}
	if normalizer == nil {
		panic(e.NewNilArgumentError("normalizer"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &service{
		log:        log,
		extractor:  extractor,
		normalizer: normalizer,
		reminders:  reminders,
		events:     events,
	}
}

// Run turns a free-text message into a persisted reminder: extract fields via
// the external provider, normalize them into a validated draft, persist the
// draft. Nothing is persisted when any step fails, and the steps run strictly
// in sequence.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if strings.TrimSpace(input.Message) == "" {
		return result, reminder.ErrEmptyMessage
	}

	candidate, err := s.extractor.ExtractReminder(ctx, input.Message)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrTextExtraction):
			s.log.Warning(
				ctx,
				"Reminder text extraction failed.",
				logging.Entry("userID", input.UserID),
				logging.Entry("err", err),
			)
		default:
			logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		}
		return result, err
	}

	draft, err := s.normalizer.Normalize(candidate, input.Message, input.UserID)
	if err != nil {
		s.log.Warning(
			ctx,
			"Reminder normalization failed.",
			logging.Entry("userID", input.UserID),
			logging.Entry("reason", reminder.NormalizationReason(err)),
			logging.Entry("candidate", candidate),
		)
		return result, err
	}

	createdReminder, err := s.reminders.Create(ctx, draft)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	if err := s.events.PublishCreated(ctx, createdReminder); err != nil {
		// Best effort, the reminder is already persisted.
		s.log.Warning(
			ctx,
			"Could not publish reminder created event.",
			logging.Entry("reminderID", createdReminder.ID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"Reminder has been created.",
		logging.Entry("reminderID", createdReminder.ID),
		logging.Entry("userID", createdReminder.UserID),
		logging.Entry("dueAt", createdReminder.DueAt),
	)
	result.Reminder = createdReminder
	return result, nil
}
