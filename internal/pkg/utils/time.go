package utils

import (
	"pod-tracker-service/internal/pkg/constvars"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TruncateToDay returns the calendar day of t, read in t's own location,
// as midnight UTC. Values built this way are always whole days apart.
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDate accepts YYYY-MM-DD or an RFC 3339 timestamp. For a
// timestamp the day is taken as written, ignoring the clock and the offset.
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	date, err := time.Parse(constvars.CalendarDateLayout, value)
	if err == nil {
		return date, nil
	}

	timestamp, tsErr := time.Parse(time.RFC3339Nano, value)
	if tsErr != nil {
		return time.Time{}, err
	}
	return TruncateToDay(timestamp), nil
}

func FormatCalendarDate(date *time.Time) string {
	if date == nil || date.IsZero() {
		return ""
	}
	return date.UTC().Format(constvars.CalendarDateLayout)
}

// CalculatePOD returns the post-operative day: whole calendar days from
// otDate to the day now falls on in loc. Future dates give negative values
// and a missing date gives 0.
func CalculatePOD(otDate *time.Time, now time.Time, loc *time.Location) int {
	if otDate == nil || otDate.IsZero() {
		return 0
	}
	if loc == nil {
		loc = time.UTC
	}

	today := TruncateToDay(now.In(loc))
	operativeDay := TruncateToDay(otDate.UTC())
	// Both are UTC midnights, so the difference is an exact number of days.
	// time.Duration would overflow for dates about 292 years apart.
	return int((today.Unix() - operativeDay.Unix()) / secondsPerDay)
}
