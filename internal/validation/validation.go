package validation

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/errors"
)

var dayMap = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// Name validates a habit name and returns it trimmed
func Name(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", errors.Validationf("habit name cannot be empty")
	}
	return name, nil
}

// Day validates a YYYY-MM-DD day string and returns it normalized
func Day(s string) (string, error) {
	t, err := dateutil.ParseDay(s)
	if err != nil {
		return "", err
	}
	return dateutil.FormatDay(t), nil
}

// DayRange validates an inclusive start/end day pair
func DayRange(start, end string) (string, string, error) {
	s, err := Day(start)
	if err != nil {
		return "", "", err
	}
	e, err := Day(end)
	if err != nil {
		return "", "", err
	}
	if e < s {
		return "", "", errors.Validationf("invalid range: %s is before %s", e, s)
	}
	return s, e, nil
}

// Weekdays parses a comma-separated list of weekdays. It accepts three-letter
// tags, full names, and numbers (0=Sunday, 6=Saturday), and returns the
// deduplicated tags in Monday-first week order.
func Weekdays(s string) ([]string, error) {
	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		// Try parsing as number (0=Sunday, 6=Saturday)
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, errors.Validationf("invalid weekday %q", part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}

	order := dateutil.WeekOrder(time.Monday)
	tagged := make([]string, 0, len(weekdays))
	for _, wd := range weekdays {
		tag := order[(int(wd)+6)%7]
		if !slices.Contains(tagged, tag) {
			tagged = append(tagged, tag)
		}
	}
	sort.Slice(tagged, func(i, j int) bool {
		return slices.Index(order, tagged[i]) < slices.Index(order, tagged[j])
	})
	return tagged, nil
}

// Windows parses a comma-separated list of positive window sizes (days) and
// returns them ascending with duplicates removed.
func Windows(s string) ([]int, error) {
	var windows []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, errors.Validationf("invalid window size %q", part)
		}
		if !slices.Contains(windows, n) {
			windows = append(windows, n)
		}
	}
	if len(windows) == 0 {
		return nil, errors.Validationf("no window sizes given")
	}
	sort.Ints(windows)
	return windows, nil
}

// Goal validates a weekly goal value
func Goal(n int) error {
	if n <= 0 {
		return errors.Validationf("weekly goal must be positive, got %d", n)
	}
	return nil
}
