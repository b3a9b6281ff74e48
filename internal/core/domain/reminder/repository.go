package reminder

import (
	c "billmind/internal/core/domain/common"
	"billmind/internal/core/domain/user"
	"context"
)

type ReadOptions struct {
	UserIDEquals c.Optional[user.ID]
}

// Repository is the boundary to the external persistent collection.
type Repository interface {
	// Create assigns ID and CreatedAt, persists the draft and returns the
	// canonical record. A failed create never leaves a partial record behind.
	Create(ctx context.Context, draft Draft) (Reminder, error)
	// Read returns reminders ordered soonest-due first: ascending by
	// (Date, Time), ties broken by insertion order (ascending ID). Consumers
	// rely on this ordering.
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	// MarkPaid unconditionally sets IsPaid. Marking an already paid reminder
	// is a no-op success. Returns ErrReminderDoesNotExist for unknown IDs.
	MarkPaid(ctx context.Context, id ID) (Reminder, error)
}
