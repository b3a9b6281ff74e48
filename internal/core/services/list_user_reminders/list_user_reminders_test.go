package listuserreminders

import (
	c "billmind/internal/core/domain/common"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*reminder.TestReminderRepository, services.Service[Input, Result]) {
	t.Helper()
	repository := reminder.NewTestReminderRepository()
	return repository, New(logging.NewFakeLogger(), repository)
}

func create(t *testing.T, repository *reminder.TestReminderRepository, userID user.ID, date, timeOfDay string) reminder.Reminder {
	t.Helper()
	created, err := repository.Create(context.Background(), reminder.Draft{
		UserID: userID,
		Task:   "pay bill",
		Date:   reminder.Date(date),
		Time:   reminder.TimeOfDay(timeOfDay),
	})
	require.NoError(t, err)
	return created
}

func TestRemindersOrderedSoonestDueFirst(t *testing.T) {
	repository, service := setup(t)
	late := create(t, repository, "u1", "2025-09-01", "10:00")
	earliest := create(t, repository, "u1", "2025-08-15", "08:00")
	sameDayLater := create(t, repository, "u1", "2025-08-15", "18:00")

	result, err := service.Run(context.Background(), Input{})

	require.NoError(t, err)
	assert.Equal(t, []reminder.Reminder{earliest, sameDayLater, late}, result.Reminders)
}

func TestTiesBrokenByInsertionOrder(t *testing.T) {
	repository, service := setup(t)
	first := create(t, repository, "u1", "2025-08-15", "18:00")
	second := create(t, repository, "u1", "2025-08-15", "18:00")

	result, err := service.Run(context.Background(), Input{})

	require.NoError(t, err)
	assert.Equal(t, []reminder.Reminder{first, second}, result.Reminders)
}

func TestGroupedOpenBeforePaidPreservingOrder(t *testing.T) {
	repository, service := setup(t)
	a := create(t, repository, "u1", "2025-09-01", "10:00")
	b := create(t, repository, "u1", "2025-08-15", "10:00")
	cRem := create(t, repository, "u1", "2025-08-20", "10:00")
	paidB, err := repository.MarkPaid(context.Background(), b.ID)
	require.NoError(t, err)

	result, err := service.Run(context.Background(), Input{})

	require.NoError(t, err)
	assert.Equal(t, []reminder.Reminder{cRem, a}, result.Grouped.Open)
	assert.Equal(t, []reminder.Reminder{paidB}, result.Grouped.Paid)
}

func TestScopedByUser(t *testing.T) {
	repository, service := setup(t)
	mine := create(t, repository, "u1", "2025-08-15", "10:00")
	create(t, repository, "u2", "2025-08-10", "10:00")

	result, err := service.Run(
		context.Background(),
		Input{UserIDEquals: c.NewOptional(user.ID("u1"), true)},
	)

	require.NoError(t, err)
	assert.Equal(t, []reminder.Reminder{mine}, result.Reminders)
}

func TestRepositoryErrorPropagated(t *testing.T) {
	repository, service := setup(t)
	repository.ReadError = errors.New("connection refused")

	_, err := service.Run(context.Background(), Input{})

	require.ErrorIs(t, err, repository.ReadError)
}
