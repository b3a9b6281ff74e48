package app

import (
	"fmt"
	"net/http"

	"billmind/internal/app/deps"
	"billmind/internal/app/services"
	"billmind/internal/http/handlers/notifications/events"
	createreminderfromtext "billmind/internal/http/handlers/reminders/create_reminder_from_text"
	listgroupedreminders "billmind/internal/http/handlers/reminders/list_grouped_reminders"
	listuserreminders "billmind/internal/http/handlers/reminders/list_user_reminders"
	markreminderpaid "billmind/internal/http/handlers/reminders/mark_reminder_paid"
	createtransaction "billmind/internal/http/handlers/spendings/create_transaction"
	getspendinginsights "billmind/internal/http/handlers/spendings/get_spending_insights"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(
		http.MethodPost,
		"/",
		createreminderfromtext.New(s.CreateReminderFromText, deps.IdentityResolver),
	)
	reminderRouter.Method(
		http.MethodGet,
		"/",
		listuserreminders.New(s.ListUserReminders, deps.IdentityResolver),
	)
	reminderRouter.Method(
		http.MethodGet,
		"/grouped",
		listgroupedreminders.New(s.ListUserReminders, deps.IdentityResolver),
	)
	reminderRouter.Method(
		http.MethodPut,
		"/{reminderID:[0-9]+}/mark-paid",
		markreminderpaid.New(s.MarkReminderPaid),
	)

	spendingRouter := chi.NewRouter()
	spendingRouter.Method(
		http.MethodPost,
		"/transactions",
		createtransaction.New(s.CreateTransaction, deps.IdentityResolver),
	)
	spendingRouter.Method(
		http.MethodGet,
		"/insights/{userID}",
		getspendinginsights.New(s.GetSpendingInsights, deps.IdentityResolver),
	)

	notificationsRouter := chi.NewRouter()
	notificationsRouter.Method(
		http.MethodGet,
		"/events",
		events.New(deps.Logger, deps.SseServer, deps.IdentityResolver),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/reminders", reminderRouter)
	router.Mount("/spendings", spendingRouter)
	router.Mount("/notifications", notificationsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
