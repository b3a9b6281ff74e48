package listuserreminders

import (
	c "billmind/internal/core/domain/common"
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	"context"
)

type Input struct {
	UserIDEquals c.Optional[user.ID]
}

type Result struct {
	// Reminders is the store's ordered sequence, soonest-due first.
	Reminders []reminder.Reminder
	// Grouped partitions the same sequence into open-then-paid.
	Grouped reminder.Grouped
}

type service struct {
	log       logging.Logger
	reminders reminder.Repository
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	return &service{log: log, reminders: reminders}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reminders, err := s.reminders.Read(ctx, reminder.ReadOptions{UserIDEquals: input.UserIDEquals})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	result.Reminders = reminders
	result.Grouped = reminder.Partition(reminders)
	return result, nil
}
