package reminderevents

import (
	"context"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/reminder"
)

// Composite fans an event out to every underlying publisher. All publishers
// get a chance to run even when an earlier one fails; the first error is
// returned.
type Composite struct {
	publishers []reminder.EventPublisher
}

func NewComposite(publishers ...reminder.EventPublisher) *Composite {
	for _, p := range publishers {
		if p == nil {
			panic(e.NewNilArgumentError("publishers"))
		}
	}
	return &Composite{publishers: publishers}
}

func (c *Composite) PublishCreated(ctx context.Context, rem reminder.Reminder) error {
	var firstErr error
	for _, p := range c.publishers {
		if err := p.PublishCreated(ctx, rem); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Composite) PublishPaid(ctx context.Context, rem reminder.Reminder) error {
	var firstErr error
	for _, p := range c.publishers {
		if err := p.PublishPaid(ctx, rem); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
