package response

import (
	"time"

	"billmind/internal/core/domain/reminder"
)

type Reminder struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	OriginalText string    `json:"original_text"`
	Task         string    `json:"task"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	DueAt        time.Time `json:"due_at"`
	IsPaid       bool      `json:"is_paid"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.UserID = dr.UserID.String()
	r.OriginalText = dr.OriginalText
	r.Task = dr.Task
	r.Date = dr.Date.String()
	r.Time = dr.Time.String()
	r.DueAt = dr.DueAt
	r.IsPaid = dr.IsPaid
	r.CreatedAt = dr.CreatedAt
}

func Reminders(domainReminders []reminder.Reminder) []Reminder {
	reminders := make([]Reminder, 0, len(domainReminders))
	for _, dr := range domainReminders {
		r := Reminder{}
		r.FromDomainType(dr)
		reminders = append(reminders, r)
	}
	return reminders
}
