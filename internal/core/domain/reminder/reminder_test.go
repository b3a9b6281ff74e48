package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReminderValidate(t *testing.T) {
	valid := Reminder{
		ID:           1,
		UserID:       "user-1",
		OriginalText: "pay electricity bill on 15th August at 6 PM",
		Task:         "pay electricity bill",
		Date:         "2025-08-15",
		Time:         "18:00",
		DueAt:        time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC),
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		id     string
		mutate func(r *Reminder)
	}{
		{id: "no-owner", mutate: func(r *Reminder) { r.UserID = "" }},
		{id: "empty-task", mutate: func(r *Reminder) { r.Task = "" }},
		{id: "empty-date", mutate: func(r *Reminder) { r.Date = "" }},
		{id: "zero-date", mutate: func(r *Reminder) { r.Date = "0000-00-00" }},
		{id: "malformed-date", mutate: func(r *Reminder) { r.Date = "15-08-2025" }},
		{id: "empty-time", mutate: func(r *Reminder) { r.Time = "" }},
		{id: "zero-time", mutate: func(r *Reminder) { r.Time = "00:00:00" }},
		{id: "malformed-time", mutate: func(r *Reminder) { r.Time = "6 pm" }},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rem := valid
			testcase.mutate(&rem)
			require.Error(t, rem.Validate())
		})
	}
}
