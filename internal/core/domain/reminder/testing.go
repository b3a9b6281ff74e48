package reminder

import (
	"context"
	"sort"
	"sync"
	"time"
)

type TestTextExtractor struct {
	Candidate   ExtractionCandidate
	Err         error
	ExtractedOf []string
	lock        sync.Mutex
}

func NewTestTextExtractor() *TestTextExtractor {
	return &TestTextExtractor{}
}

func (e *TestTextExtractor) ExtractReminder(
	ctx context.Context,
	rawText string,
) (ExtractionCandidate, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.Err != nil {
		return ExtractionCandidate{}, e.Err
	}
	e.ExtractedOf = append(e.ExtractedOf, rawText)
	return e.Candidate, nil
}

// TestReminderRepository is an in-memory repository honouring the ordering
// and idempotence contracts of the real one.
type TestReminderRepository struct {
	CreateError   error
	ReadError     error
	MarkPaidError error
	CreatedAt     time.Time
	Reminders     []Reminder
	ReadWith      []ReadOptions
	nextID        ID
	lock          sync.Mutex
}

func NewTestReminderRepository() *TestReminderRepository {
	return &TestReminderRepository{}
}

func (r *TestReminderRepository) Create(ctx context.Context, draft Draft) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	rem = Reminder{
		ID:           r.nextID,
		UserID:       draft.UserID,
		OriginalText: draft.OriginalText,
		Task:         draft.Task,
		Date:         draft.Date,
		Time:         draft.Time,
		DueAt:        draft.DueAt,
		IsPaid:       false,
		CreatedAt:    r.CreatedAt,
	}
	r.Reminders = append(r.Reminders, rem)
	return rem, nil
}

func (r *TestReminderRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)

	reminders := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		if options.UserIDEquals.IsPresent && rem.UserID != options.UserIDEquals.Value {
			continue
		}
		reminders = append(reminders, rem)
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		if reminders[i].Date != reminders[j].Date {
			return reminders[i].Date < reminders[j].Date
		}
		if reminders[i].Time != reminders[j].Time {
			return reminders[i].Time < reminders[j].Time
		}
		return reminders[i].ID < reminders[j].ID
	})
	return reminders, nil
}

func (r *TestReminderRepository) MarkPaid(ctx context.Context, id ID) (rem Reminder, err error) {
	if r.MarkPaidError != nil {
		return rem, r.MarkPaidError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Reminders {
		if r.Reminders[ix].ID == id {
			r.Reminders[ix].IsPaid = true
			return r.Reminders[ix], nil
		}
	}
	return rem, ErrReminderDoesNotExist
}

type TestEventPublisher struct {
	Err     error
	Created []Reminder
	Paid    []Reminder
	lock    sync.Mutex
}

func NewTestEventPublisher() *TestEventPublisher {
	return &TestEventPublisher{}
}

func (p *TestEventPublisher) PublishCreated(ctx context.Context, rem Reminder) error {
	if p.Err != nil {
		return p.Err
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Created = append(p.Created, rem)
	return nil
}

func (p *TestEventPublisher) PublishPaid(ctx context.Context, rem Reminder) error {
	if p.Err != nil {
		return p.Err
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Paid = append(p.Paid, rem)
	return nil
}
