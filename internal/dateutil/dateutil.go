package dateutil

import (
	"iter"
	"time"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/errors"
)

// tags maps time.Weekday to the fixed lowercase three-letter tags used in
// schedules and reports. The mapping is locale independent.
var tags = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// ParseDay parses a YYYY-MM-DD day string into a plain calendar date
// (midnight UTC). Time-of-day and timezone never enter the data model.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, errors.Validationf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDay formats a date as YYYY-MM-DD
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Tag returns the weekday tag (mon..sun) for a date
func Tag(t time.Time) string {
	return tags[t.Weekday()]
}

// TagOfDay returns the weekday tag for a YYYY-MM-DD day string
func TagOfDay(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return Tag(t), nil
}

// ParseTag converts a weekday tag to its time.Weekday
func ParseTag(tag string) (time.Weekday, error) {
	for wd, t := range tags {
		if t == tag {
			return time.Weekday(wd), nil
		}
	}
	return 0, errors.Validationf("invalid weekday %q", tag)
}

// WeekOrder returns the seven weekday tags starting from the given week start
func WeekOrder(start time.Weekday) []string {
	ordered := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		ordered = append(ordered, tags[(int(start)+i)%7])
	}
	return ordered
}

// WeekStart returns the first day of the 7-day window containing day, where
// the window begins on start (Monday or Sunday).
func WeekStart(day time.Time, start time.Weekday) time.Time {
	offset := (int(day.Weekday()) - int(start) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// Range returns a restartable sequence of calendar dates from start to end
// inclusive, ascending. It fails when end is before start.
func Range(start, end time.Time) (iter.Seq[time.Time], error) {
	if end.Before(start) {
		return nil, errors.Validationf("invalid range: %s is before %s", FormatDay(end), FormatDay(start))
	}
	return func(yield func(time.Time) bool) {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}, nil
}

// DaysBetween returns the number of days from a to b (negative when b is
// earlier than a).
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// ParseWeekStart parses a week-start flag value (mon or sun)
func ParseWeekStart(s string) (time.Weekday, error) {
	switch s {
	case "mon":
		return time.Monday, nil
	case "sun":
		return time.Sunday, nil
	default:
		return 0, errors.Validationf("invalid week start %q (expected mon or sun)", s)
	}
}
