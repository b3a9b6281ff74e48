package reminder

import (
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/user"
	"strings"
	"time"
)

// Draft is a fully validated reminder ready for persistence. Only the
// repository may turn a draft into a Reminder.
type Draft struct {
	UserID       user.ID
	OriginalText string
	Task         string
	Date         Date
	Time         TimeOfDay
	DueAt        time.Time
}

// Normalizer performs purely syntactic validation of extraction candidates.
// Semantic inference (relative dates and the like) is entirely the
// extractor's job.
type Normalizer struct {
	timeZone string
}

func NewNormalizer(timeZone string) *Normalizer {
	if _, err := time.LoadLocation(timeZone); err != nil {
		panic(e.NewInvalidStateError("time zone is not valid: " + timeZone))
	}
	return &Normalizer{timeZone: timeZone}
}

func (n *Normalizer) Normalize(
	candidate ExtractionCandidate,
	rawText string,
	userID user.ID,
) (draft Draft, err error) {
	task := strings.TrimSpace(candidate.Task)
	if task == "" {
		return draft, ErrEmptyTask
	}
	date, err := ParseDate(candidate.Date)
	if err != nil {
		return draft, err
	}
	timeOfDay, err := ParseTimeOfDay(candidate.Time)
	if err != nil {
		return draft, err
	}
	return Draft{
		UserID:       userID,
		OriginalText: rawText,
		Task:         task,
		Date:         date,
		Time:         timeOfDay,
		DueAt:        CombineDueAt(date, timeOfDay, n.timeZone),
	}, nil
}
