// Package report composes per-habit metrics into the CLI's views. Every
// builder is a pure function of (snapshot, reference date, options) and
// never mutates the store; rendering lives in the cli layer.
package report

import (
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/metrics"
	"github.com/julianstephens/ritual/internal/models"
)

// visible returns the habits a view should consider, in snapshot order
func visible(snap *models.Snapshot, all bool) []models.Habit {
	if all {
		return snap.Habits
	}
	return snap.Active()
}

// truncate applies an optional row limit
func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

// StreakRow is one habit's streak summary
type StreakRow struct {
	ID        int
	Name      string
	Current   int
	Longest   int
	Total     int
	LastDay   string // empty when never checked in
	DaysSince int    // -1 when never checked in
	Archived  bool
}

// BuildStreaks computes a streak row per habit, in snapshot order
func BuildStreaks(snap *models.Snapshot, asOf time.Time, all bool) []StreakRow {
	habits := visible(snap, all)
	rows := make([]StreakRow, 0, len(habits))
	for i := range habits {
		h := &habits[i]
		last, _ := h.LastCheckin()
		rows = append(rows, StreakRow{
			ID:        h.ID,
			Name:      h.Name,
			Current:   metrics.CurrentStreak(h, asOf),
			Longest:   metrics.LongestStreak(h, asOf),
			Total:     h.TotalCheckins(),
			LastDay:   last,
			DaysSince: metrics.DaysSince(h, asOf),
			Archived:  h.Archived,
		})
	}
	return rows
}

// SortStreaks orders streak rows by the given mode: current and longest sort
// descending (ties by ID), name sorts alphabetically, id numerically.
func SortStreaks(rows []StreakRow, mode string) error {
	switch mode {
	case "current":
		slices.SortStableFunc(rows, func(a, b StreakRow) int {
			if a.Current != b.Current {
				return b.Current - a.Current
			}
			return a.ID - b.ID
		})
	case "longest":
		slices.SortStableFunc(rows, func(a, b StreakRow) int {
			if a.Longest != b.Longest {
				return b.Longest - a.Longest
			}
			return a.ID - b.ID
		})
	case "name":
		slices.SortStableFunc(rows, func(a, b StreakRow) int {
			return strings.Compare(a.Name, b.Name)
		})
	case "id":
		slices.SortStableFunc(rows, func(a, b StreakRow) int {
			return a.ID - b.ID
		})
	default:
		return errors.Validationf("invalid sort mode %q (expected current, longest, name, or id)", mode)
	}
	return nil
}

// ReportRow combines the streak summary with pacing and staleness
type ReportRow struct {
	StreakRow
	Stale  bool
	Pacing *metrics.Pacing
}

// BuildReport builds the main report: one row per habit with streaks,
// weekly pacing, and staleness, sorted by current streak descending.
func BuildReport(snap *models.Snapshot, asOf time.Time, weekStart time.Weekday, staleDays, limit int, all bool) []ReportRow {
	habits := visible(snap, all)
	rows := make([]ReportRow, 0, len(habits))
	streaks := BuildStreaks(snap, asOf, all)
	for i := range habits {
		h := &habits[i]
		rows = append(rows, ReportRow{
			StreakRow: streaks[i],
			Stale:     metrics.Stale(h, asOf, staleDays),
			Pacing:    metrics.WeekPacing(h, asOf, weekStart),
		})
	}
	slices.SortStableFunc(rows, func(a, b ReportRow) int {
		if a.Current != b.Current {
			return b.Current - a.Current
		}
		return a.ID - b.ID
	})
	return truncate(rows, limit)
}

// TodayRow is one habit's status for a single day
type TodayRow struct {
	ID      int
	Name    string
	Due     bool
	Checked bool
}

// TodayView summarizes a single day across habits
type TodayView struct {
	Day     string
	Rows    []TodayRow
	Due     int
	Checked int
}

// BuildToday reports which habits are due and checked on the given day
func BuildToday(snap *models.Snapshot, day, tag string) TodayView {
	view := TodayView{Day: day}
	for _, h := range snap.Active() {
		row := TodayRow{
			ID:      h.ID,
			Name:    h.Name,
			Due:     h.DueOnTag(tag),
			Checked: h.Checked(day),
		}
		if row.Due {
			view.Due++
			if row.Checked {
				view.Checked++
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// WeekRow is one habit's progress through the current week
type WeekRow struct {
	ID      int
	Name    string
	Days    []bool // checked per day of the week, in week order
	Count   int
	Pacing  *metrics.Pacing
	HasGoal bool
}

// WeekView is the per-week breakdown across habits
type WeekView struct {
	Start string
	End   string
	Days  []string // the seven day strings, week-start first
	Rows  []WeekRow
}

// BuildWeek lays out the week containing asOf: per habit, which days are
// checked plus weekly-goal pacing. Check-ins after asOf are not counted
// toward pacing but do show in the grid.
func BuildWeek(snap *models.Snapshot, asOf time.Time, weekStart time.Weekday, all bool) WeekView {
	ws := dateutil.WeekStart(asOf, weekStart)
	view := WeekView{}
	for i := 0; i < 7; i++ {
		view.Days = append(view.Days, dateutil.FormatDay(ws.AddDate(0, 0, i)))
	}
	view.Start = view.Days[0]
	view.End = view.Days[6]

	for _, h := range visible(snap, all) {
		row := WeekRow{ID: h.ID, Name: h.Name, HasGoal: h.WeeklyGoal != nil}
		for _, day := range view.Days {
			checked := h.Checked(day)
			row.Days = append(row.Days, checked)
			if checked {
				row.Count++
			}
		}
		row.Pacing = metrics.WeekPacing(&h, asOf, weekStart)
		view.Rows = append(view.Rows, row)
	}
	return view
}

// Stats are whole-store totals
type Stats struct {
	Total         int
	ActiveCount   int
	Archived      int
	TotalCheckins int
	WithGoal      int
	WithSchedule  int
}

// BuildStats tallies totals across all habits, archived included
func BuildStats(snap *models.Snapshot) Stats {
	var st Stats
	for i := range snap.Habits {
		h := &snap.Habits[i]
		st.Total++
		if h.Archived {
			st.Archived++
		} else {
			st.ActiveCount++
		}
		st.TotalCheckins += h.TotalCheckins()
		if h.WeeklyGoal != nil {
			st.WithGoal++
		}
		if h.IsScheduled() {
			st.WithSchedule++
		}
	}
	return st
}

// HistoryRow lists a habit's check-ins inside a trailing window
type HistoryRow struct {
	ID   int
	Name string
	Days []string
}

// BuildHistory collects each habit's check-ins over the `days`-day window
// ending at asOf, ascending.
func BuildHistory(snap *models.Snapshot, asOf time.Time, days int, all bool) []HistoryRow {
	start := dateutil.FormatDay(asOf.AddDate(0, 0, -(days - 1)))
	end := dateutil.FormatDay(asOf)
	var rows []HistoryRow
	for _, h := range visible(snap, all) {
		row := HistoryRow{ID: h.ID, Name: h.Name}
		for _, day := range h.Checkins {
			if day >= start && day <= end {
				row.Days = append(row.Days, day)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
