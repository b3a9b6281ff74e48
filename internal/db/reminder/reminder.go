package reminder

import (
	"context"
	"errors"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/user"

	"github.com/jackc/pgx/v4"
)

// DBTX is satisfied by both pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxReminderRepository struct {
	db DBTX
}

func NewPgxReminderRepository(db DBTX) *PgxReminderRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReminderRepository{db: db}
}

const createReminderQuery = `
INSERT INTO reminder (user_id, original_text, task, date, time_of_day, due_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, original_text, task, date, time_of_day, due_at, is_paid, created_at`

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	draft reminder.Draft,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		createReminderQuery,
		string(draft.UserID),
		draft.OriginalText,
		draft.Task,
		string(draft.Date),
		string(draft.Time),
		draft.DueAt,
	)
	return scanReminder(row)
}

const readRemindersQuery = `
SELECT id, user_id, original_text, task, date, time_of_day, due_at, is_paid, created_at
FROM reminder
WHERE ($1 OR user_id = $2)
ORDER BY date ASC, time_of_day ASC, id ASC`

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) (reminders []reminder.Reminder, err error) {
	rows, err := r.db.Query(
		ctx,
		readRemindersQuery,
		!options.UserIDEquals.IsPresent,
		string(options.UserIDEquals.Value),
	)
	if err != nil {
		return reminders, err
	}
	defer rows.Close()

	reminders = make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return reminders, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

const markReminderPaidQuery = `
UPDATE reminder SET is_paid = TRUE
WHERE id = $1
RETURNING id, user_id, original_text, task, date, time_of_day, due_at, is_paid, created_at`

func (r *PgxReminderRepository) MarkPaid(
	ctx context.Context,
	id reminder.ID,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(ctx, markReminderPaidQuery, int64(id))
	rem, err = scanReminder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rem, reminder.ErrReminderDoesNotExist
		}
		return rem, err
	}
	return rem, nil
}

func scanReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var (
		id           int64
		userID       string
		originalText string
		task         string
		date         string
		timeOfDay    string
	)
	err = row.Scan(
		&id,
		&userID,
		&originalText,
		&task,
		&date,
		&timeOfDay,
		&rem.DueAt,
		&rem.IsPaid,
		&rem.CreatedAt,
	)
	if err != nil {
		return rem, err
	}
	rem.ID = reminder.ID(id)
	rem.UserID = user.ID(userID)
	rem.OriginalText = originalText
	rem.Task = task
	rem.Date = reminder.Date(date)
	rem.Time = reminder.TimeOfDay(timeOfDay)
	return rem, rem.Validate()
}
