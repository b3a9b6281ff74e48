package reminder

import (
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/user"
	"time"
)

type ID int64

// Reminder is the canonical persisted record. Task, Date and Time are never
// empty or malformed on a persisted reminder; normalization rejects bad
// candidates before they reach the repository.
type Reminder struct {
	ID           ID
	UserID       user.ID
	OriginalText string
	Task         string
	Date         Date
	Time         TimeOfDay
	DueAt        time.Time
	IsPaid       bool
	CreatedAt    time.Time
}

func (r *Reminder) Validate() error {
	if r.UserID == "" {
		return e.NewInvalidStateError("reminder must have an owner")
	}
	if r.Task == "" {
		return e.NewInvalidStateError("reminder task must not be empty")
	}
	if _, err := ParseDate(string(r.Date)); err != nil {
		return e.NewInvalidStateError("reminder date is not valid")
	}
	if _, err := ParseTimeOfDay(string(r.Time)); err != nil {
		return e.NewInvalidStateError("reminder time is not valid")
	}
	return nil
}
