package reminderevents

import (
	"context"
	"errors"
	"testing"
	"time"

	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositePublishesToAllPublishers(t *testing.T) {
	first := reminder.NewTestEventPublisher()
	second := reminder.NewTestEventPublisher()
	composite := NewComposite(first, second)
	rem := testReminder()

	err := composite.PublishCreated(context.Background(), rem)

	require.Nil(t, err)
	assert.Equal(t, []reminder.Reminder{rem}, first.Created)
	assert.Equal(t, []reminder.Reminder{rem}, second.Created)
}

func TestCompositeContinuesAfterFailure(t *testing.T) {
	first := reminder.NewTestEventPublisher()
	first.Err = errors.New("broker unavailable")
	second := reminder.NewTestEventPublisher()
	composite := NewComposite(first, second)
	rem := testReminder()

	err := composite.PublishPaid(context.Background(), rem)

	require.ErrorIs(t, err, first.Err)
	assert.Equal(t, []reminder.Reminder{rem}, second.Paid)
}

func TestCompositePanicsOnNilPublisher(t *testing.T) {
	assert.Panics(t, func() { NewComposite(reminder.NewTestEventPublisher(), nil) })
}

func testReminder() reminder.Reminder {
	return reminder.Reminder{
		ID:           1,
		UserID:       user.Guest,
		OriginalText: "pay rent tomorrow at 9am",
		Task:         "pay rent",
		Date:         "2025-08-16",
		Time:         "09:00",
		DueAt:        time.Date(2025, 8, 16, 9, 0, 0, 0, time.UTC),
	}
}
