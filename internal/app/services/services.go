package services

import (
	"billmind/internal/app/deps"
	drl "billmind/internal/core/domain/rate_limiter"
	"billmind/internal/core/services"
	createreminderfromtext "billmind/internal/core/services/create_reminder_from_text"
	createtransaction "billmind/internal/core/services/create_transaction"
	getspendinginsights "billmind/internal/core/services/get_spending_insights"
	listuserreminders "billmind/internal/core/services/list_user_reminders"
	markreminderpaid "billmind/internal/core/services/mark_reminder_paid"
	ratelimiting "billmind/internal/core/services/rate_limiting"
)

type Services struct {
	CreateReminderFromText services.Service[createreminderfromtext.Input, createreminderfromtext.Result]
	ListUserReminders      services.Service[listuserreminders.Input, listuserreminders.Result]
	MarkReminderPaid       services.Service[markreminderpaid.Input, markreminderpaid.Result]

	CreateTransaction   services.Service[createtransaction.Input, createtransaction.Result]
	GetSpendingInsights services.Service[getspendinginsights.Input, getspendinginsights.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateReminderFromText = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: deps.Config.CreateReminderRateLimitPerMinute},
		createreminderfromtext.New(
			deps.Logger,
			deps.TextExtractor,
			deps.ReminderNormalizer,
			deps.ReminderRepository,
			deps.ReminderEventPublisher,
		),
	)
	s.ListUserReminders = listuserreminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.MarkReminderPaid = markreminderpaid.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.ReminderEventPublisher,
	)

	s.CreateTransaction = createtransaction.New(
		deps.Logger,
		deps.TransactionRepository,
	)
	s.GetSpendingInsights = getspendinginsights.New(
		deps.Logger,
		deps.TransactionRepository,
		deps.Now,
	)

	return s
}
