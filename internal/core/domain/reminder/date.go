package reminder

import (
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Date is a validated ISO 8601 calendar date (YYYY-MM-DD).
type Date string

// TimeOfDay is a validated 24-hour wall clock time (HH:MM).
type TimeOfDay string

func (d Date) String() string {
	return string(d)
}

func (t TimeOfDay) String() string {
	return string(t)
}

// ParseDate validates a canonical YYYY-MM-DD date string. Carbon treats
// empty and zero-valued strings ("0", "0000-00-00") as parseable, so the
// parsed value must round-trip back to the input to count as valid.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	parsed := carbon.ParseByLayout(raw, DateLayout)
	if parsed.Error != nil || parsed.IsZero() || parsed.Layout(DateLayout) != raw {
		return "", ErrInvalidDate
	}
	return Date(raw), nil
}

// ParseTimeOfDay validates a canonical 24-hour HH:MM string, with the same
// round-trip guard as ParseDate.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	raw = strings.TrimSpace(raw)
	parsed := carbon.ParseByLayout(raw, TimeLayout)
	if parsed.Error != nil || parsed.IsZero() || parsed.Layout(TimeLayout) != raw {
		return "", ErrInvalidTime
	}
	return TimeOfDay(raw), nil
}

// CombineDueAt derives the due instant from a validated date and time in the
// given reference time zone. Date and time stay canonical, the instant is a
// cached projection.
func CombineDueAt(date Date, timeOfDay TimeOfDay, timeZone string) time.Time {
	combined := carbon.ParseByLayout(
		string(date)+" "+string(timeOfDay),
		DateLayout+" "+TimeLayout,
		timeZone,
	)
	return combined.Carbon2Time()
}
