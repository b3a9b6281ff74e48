package reminder

import "context"

// ExtractionCandidate is the untrusted structured guess produced by the
// external language model from free text. It is discarded after
// normalization succeeds or fails.
type ExtractionCandidate struct {
	Task string `json:"task"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// TextExtractor wraps the external completion provider behind a two-outcome
// contract: a candidate or an error wrapping ErrTextExtraction. The call is
// stateless and safe to retry.
type TextExtractor interface {
	ExtractReminder(ctx context.Context, rawText string) (ExtractionCandidate, error)
}
