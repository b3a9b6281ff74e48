package reminder

import "errors"

var (
	ErrEmptyMessage         = errors.New("message must not be empty")
	ErrTextExtraction       = errors.New("could not extract reminder fields from text")
	ErrEmptyTask            = errors.New("extracted task is empty")
	ErrInvalidDate          = errors.New("extracted date is not a valid calendar date")
	ErrInvalidTime          = errors.New("extracted time is not a valid time of day")
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
)

// NormalizationReason maps a normalization failure to a stable reason code
// for logs and telemetry. Callers surface only a generic error to end users.
func NormalizationReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyTask):
		return "empty-task"
	case errors.Is(err, ErrInvalidDate):
		return "invalid-date"
	case errors.Is(err, ErrInvalidTime):
		return "invalid-time"
	default:
		return ""
	}
}
