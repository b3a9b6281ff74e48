package createreminderfromtext

import (
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type suite struct {
	log       *logging.FakeLogger
	extractor *reminder.TestTextExtractor
	reminders *reminder.TestReminderRepository
	events    *reminder.TestEventPublisher
}

func setupSuite() *suite {
	return &suite{
		log:       logging.NewFakeLogger(),
		extractor: reminder.NewTestTextExtractor(),
		reminders: reminder.NewTestReminderRepository(),
		events:    reminder.NewTestEventPublisher(),
	}
}

func (s *suite) service() services.Service[Input, Result] {
	return New(s.log, s.extractor, reminder.NewNormalizer("UTC"), s.reminders, s.events)
}

func TestReminderCreatedFromText(t *testing.T) {
	s := setupSuite()
	s.extractor.Candidate = reminder.ExtractionCandidate{
		Task: "pay electricity bill",
		Date: "2025-08-15",
		Time: "18:00",
	}
	rawText := "Remind me to pay ₹400 electricity bill by 15th August at 6 PM"

	result, err := s.service().Run(context.Background(), Input{UserID: "user-1", Message: rawText})

	require.NoError(t, err)
	created := result.Reminder
	require.Equal(t, reminder.ID(1), created.ID)
	require.Equal(t, user.ID("user-1"), created.UserID)
	require.Equal(t, rawText, created.OriginalText)
	require.Equal(t, "pay electricity bill", created.Task)
	require.Equal(t, reminder.Date("2025-08-15"), created.Date)
	require.Equal(t, reminder.TimeOfDay("18:00"), created.Time)
	require.True(t, created.DueAt.Equal(time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)))
	require.False(t, created.IsPaid)

	require.Equal(t, []string{rawText}, s.extractor.ExtractedOf)
	require.Len(t, s.reminders.Reminders, 1)
	require.Len(t, s.events.Created, 1)
}

func TestEmptyMessageRejectedBeforeAnyCollaboratorCall(t *testing.T) {
	cases := []struct {
		id      string
		message string
	}{
		{id: "empty", message: ""},
		{id: "spaces", message: "   "},
		{id: "tabs-and-newlines", message: "\t\n  \t"},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := setupSuite()

			_, err := s.service().Run(context.Background(), Input{UserID: "user-1", Message: testcase.message})

			require.ErrorIs(t, err, reminder.ErrEmptyMessage)
			require.Empty(t, s.extractor.ExtractedOf)
			require.Empty(t, s.reminders.Reminders)
			require.Empty(t, s.events.Created)
		})
	}
}

func TestNothingPersistedOnExtractionFailure(t *testing.T) {
	s := setupSuite()
	s.extractor.Err = fmt.Errorf("provider returned no content: %w", reminder.ErrTextExtraction)

	_, err := s.service().Run(context.Background(), Input{UserID: "user-1", Message: "pay bill"})

	require.ErrorIs(t, err, reminder.ErrTextExtraction)
	require.Empty(t, s.reminders.Reminders)
	require.Empty(t, s.events.Created)
}

func TestNothingPersistedOnNormalizationFailure(t *testing.T) {
	cases := []struct {
		id          string
		candidate   reminder.ExtractionCandidate
		expectedErr error
	}{
		{
			id:          "calendar-invalid-date",
			candidate:   reminder.ExtractionCandidate{Task: "pay bill", Date: "2025-02-30", Time: "10:00"},
			expectedErr: reminder.ErrInvalidDate,
		},
		{
			id:          "invalid-time",
			candidate:   reminder.ExtractionCandidate{Task: "pay bill", Date: "2025-02-10", Time: "25:61"},
			expectedErr: reminder.ErrInvalidTime,
		},
		{
			id:          "empty-task",
			candidate:   reminder.ExtractionCandidate{Task: " ", Date: "2025-02-10", Time: "10:00"},
			expectedErr: reminder.ErrEmptyTask,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := setupSuite()
			s.extractor.Candidate = testcase.candidate

			_, err := s.service().Run(context.Background(), Input{UserID: "user-1", Message: "pay bill"})

			require.ErrorIs(t, err, testcase.expectedErr)
			require.Empty(t, s.reminders.Reminders)
		})
	}
}

func TestStorageFailurePropagated(t *testing.T) {
	s := setupSuite()
	s.extractor.Candidate = reminder.ExtractionCandidate{Task: "pay bill", Date: "2025-02-10", Time: "10:00"}
	storageErr := errors.New("connection refused")
	s.reminders.CreateError = storageErr

	_, err := s.service().Run(context.Background(), Input{UserID: "user-1", Message: "pay bill"})

	require.ErrorIs(t, err, storageErr)
	require.Empty(t, s.events.Created)
}

func TestEventPublishFailureDoesNotFailCreation(t *testing.T) {
	s := setupSuite()
	s.extractor.Candidate = reminder.ExtractionCandidate{Task: "pay bill", Date: "2025-02-10", Time: "10:00"}
	s.events.Err = errors.New("broker unavailable")

	result, err := s.service().Run(context.Background(), Input{UserID: "user-1", Message: "pay bill"})

	require.NoError(t, err)
	require.Equal(t, "pay bill", result.Reminder.Task)
	require.Len(t, s.reminders.Reminders, 1)
}
