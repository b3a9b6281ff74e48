package reminder

import "context"

// EventPublisher fans lifecycle events out to interested consumers
// (notifications feed, message broker). Publishing is best effort: a failed
// publish must never fail the operation that produced the event.
type EventPublisher interface {
	PublishCreated(ctx context.Context, rem Reminder) error
	PublishPaid(ctx context.Context, rem Reminder) error
}
