package reminderevents

import (
	"context"
	"encoding/json"
	"time"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/reminder"

	"github.com/r3labs/sse/v2"
)

const (
	EventCreated = "reminder.created"
	EventPaid    = "reminder.paid"
)

type sseEventBody struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Task      string    `json:"task"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	DueAt     time.Time `json:"due_at"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
}

// SSE pushes reminder lifecycle events to connected browsers. Publishing to
// a stream nobody subscribed to is a no-op.
type SSE struct {
	sseServer *sse.Server
}

func NewSSE(sseServer *sse.Server) *SSE {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSE{sseServer: sseServer}
}

func (p *SSE) PublishCreated(ctx context.Context, rem reminder.Reminder) error {
	return p.publish(EventCreated, rem)
}

func (p *SSE) PublishPaid(ctx context.Context, rem reminder.Reminder) error {
	return p.publish(EventPaid, rem)
}

func (p *SSE) publish(eventType string, rem reminder.Reminder) error {
	body, err := json.Marshal(sseEventBody{
		ID:        int64(rem.ID),
		UserID:    rem.UserID.String(),
		Task:      rem.Task,
		Date:      rem.Date.String(),
		Time:      rem.Time.String(),
		DueAt:     rem.DueAt,
		IsPaid:    rem.IsPaid,
		CreatedAt: rem.CreatedAt,
	})
	if err != nil {
		return err
	}
	p.sseServer.Publish(rem.UserID.String(), &sse.Event{
		Event: []byte(eventType),
		Data:  body,
	})
	return nil
}
