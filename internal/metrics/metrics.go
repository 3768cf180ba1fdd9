// Package metrics derives streaks, pacing, coverage, and momentum from a
// habit's check-in history. Everything here is a pure function of the habit
// and an as-of reference date; nothing mutates the snapshot.
package metrics

import (
	"time"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/models"
)

// CurrentStreak walks backward from asOf counting consecutive scheduled days
// that are checked in. The walk stops at the first scheduled-but-unchecked
// day (the reference date included) or at the habit's creation date.
// Unscheduled days neither break nor extend the streak.
func CurrentStreak(h *models.Habit, asOf time.Time) int {
	created, err := dateutil.ParseDay(h.Created)
	if err != nil {
		return 0
	}
	streak := 0
	for d := asOf; !d.Before(created); d = d.AddDate(0, 0, -1) {
		if !h.DueOnTag(dateutil.Tag(d)) {
			continue
		}
		if !h.Checked(dateutil.FormatDay(d)) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak scans the habit's whole history up to asOf for the maximal
// run of consecutive scheduled days that are all checked in.
func LongestStreak(h *models.Habit, asOf time.Time) int {
	created, err := dateutil.ParseDay(h.Created)
	if err != nil || asOf.Before(created) {
		return 0
	}
	longest, run := 0, 0
	days, err := dateutil.Range(created, asOf)
	if err != nil {
		return 0
	}
	for d := range days {
		if !h.DueOnTag(dateutil.Tag(d)) {
			continue
		}
		if h.Checked(dateutil.FormatDay(d)) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// Pacing describes weekly-goal progress for the week containing the
// reference date.
type Pacing struct {
	Count     int
	Goal      int
	Remaining int // days left in the week, reference date included
	Status    constants.PacingStatus
}

// WeekPacing reports goal pacing for the week containing asOf, or nil when
// the habit has no weekly goal. With need = goal - count and remaining the
// days left including asOf: met when need <= 0, on-track when need <
// remaining (at least one day of slack), at-risk when need == remaining
// (only a perfect finish reaches the goal), missed otherwise.
func WeekPacing(h *models.Habit, asOf time.Time, weekStart time.Weekday) *Pacing {
	if h.WeeklyGoal == nil {
		return nil
	}
	goal := *h.WeeklyGoal
	ws := dateutil.WeekStart(asOf, weekStart)
	count := 0
	days, err := dateutil.Range(ws, asOf)
	if err != nil {
		return nil
	}
	for d := range days {
		if h.Checked(dateutil.FormatDay(d)) {
			count++
		}
	}
	weekEnd := ws.AddDate(0, 0, 6)
	remaining := dateutil.DaysBetween(asOf, weekEnd) + 1

	p := &Pacing{Count: count, Goal: goal, Remaining: remaining}
	need := goal - count
	switch {
	case need <= 0:
		p.Status = constants.PacingMet
	case need < remaining:
		p.Status = constants.PacingOnTrack
	case need == remaining:
		p.Status = constants.PacingAtRisk
	default:
		p.Status = constants.PacingMissed
	}
	return p
}

// CoverageResult reports schedule adherence over a trailing window
type CoverageResult struct {
	Ratio     float64
	Scheduled int
	Checked   int
	Missed    []string // scheduled but unchecked days, ascending
}

// Coverage computes the check-in ratio over the window of `days` days ending
// at asOf. Days before the habit's creation are excluded from both sides of
// the ratio; an empty window covers trivially (ratio 1).
func Coverage(h *models.Habit, asOf time.Time, days int) CoverageResult {
	res := CoverageResult{Ratio: 1}
	for d := range trailingWindow(h, asOf, days) {
		if !h.DueOnTag(dateutil.Tag(d)) {
			continue
		}
		res.Scheduled++
		day := dateutil.FormatDay(d)
		if h.Checked(day) {
			res.Checked++
		} else {
			res.Missed = append(res.Missed, day)
		}
	}
	if res.Scheduled > 0 {
		res.Ratio = float64(res.Checked) / float64(res.Scheduled)
	}
	return res
}

// WindowRate is the check-in rate over one trailing window
type WindowRate struct {
	Days      int
	Scheduled int
	Checked   int
	Rate      float64
}

// MomentumResult holds one rate per requested window plus a trend comparing
// the shortest window against the longest.
type MomentumResult struct {
	Rates []WindowRate
	Trend constants.Trend
}

// Momentum computes check-in rates over each trailing window. Windows are
// expected ascending (see validation.Windows). A short-window rate clearly
// above the long-window rate reads as rising, clearly below as fading.
func Momentum(h *models.Habit, asOf time.Time, windows []int) MomentumResult {
	res := MomentumResult{Trend: constants.TrendSteady}
	for _, w := range windows {
		cov := Coverage(h, asOf, w)
		res.Rates = append(res.Rates, WindowRate{
			Days:      w,
			Scheduled: cov.Scheduled,
			Checked:   cov.Checked,
			Rate:      cov.Ratio,
		})
	}
	if len(res.Rates) > 1 {
		diff := res.Rates[0].Rate - res.Rates[len(res.Rates)-1].Rate
		switch {
		case diff > 0.05:
			res.Trend = constants.TrendRising
		case diff < -0.05:
			res.Trend = constants.TrendFading
		}
	}
	return res
}

// DaysSince returns the days between the most recent check-in and asOf, or
// -1 when the habit has never been checked in.
func DaysSince(h *models.Habit, asOf time.Time) int {
	last, ok := h.LastCheckin()
	if !ok {
		return -1
	}
	t, err := dateutil.ParseDay(last)
	if err != nil {
		return -1
	}
	return dateutil.DaysBetween(t, asOf)
}

// Stale reports whether the habit has gone quiet: its last check-in (or its
// creation, if never checked) lies more than staleDays before asOf.
func Stale(h *models.Habit, asOf time.Time, staleDays int) bool {
	since := DaysSince(h, asOf)
	if since >= 0 {
		return since > staleDays
	}
	created, err := dateutil.ParseDay(h.Created)
	if err != nil {
		return false
	}
	return dateutil.DaysBetween(created, asOf) > staleDays
}

// WeekdaySummary breaks a trailing window down by weekday: how many
// check-ins landed on each weekday versus how many the schedule expected.
type WeekdaySummary struct {
	Actual        map[string]int
	Expected      map[string]int
	TotalActual   int
	TotalExpected int
}

// SummarizeWeekdays tallies actual and expected check-ins per weekday over
// the window of `days` days ending at asOf. Unlike Coverage, the window is
// not clamped to the creation date: the view describes the calendar window
// as-is.
func SummarizeWeekdays(h *models.Habit, asOf time.Time, days int) WeekdaySummary {
	sum := WeekdaySummary{
		Actual:   make(map[string]int),
		Expected: make(map[string]int),
	}
	start := asOf.AddDate(0, 0, -(days - 1))
	window, err := dateutil.Range(start, asOf)
	if err != nil {
		return sum
	}
	for d := range window {
		tag := dateutil.Tag(d)
		if h.Checked(dateutil.FormatDay(d)) {
			sum.Actual[tag]++
			sum.TotalActual++
		}
		if h.DueOnTag(tag) {
			sum.Expected[tag]++
			sum.TotalExpected++
		}
	}
	return sum
}

// UpcomingDue lists the days the habit is scheduled on over the `days` days
// starting at from (inclusive). This is the one forward-looking computation.
func UpcomingDue(h *models.Habit, from time.Time, days int) []string {
	var due []string
	window, err := dateutil.Range(from, from.AddDate(0, 0, days-1))
	if err != nil {
		return nil
	}
	for d := range window {
		if h.DueOnTag(dateutil.Tag(d)) {
			due = append(due, dateutil.FormatDay(d))
		}
	}
	return due
}

// trailingWindow yields the days of the `days`-day window ending at asOf,
// clamped so it never starts before the habit existed.
func trailingWindow(h *models.Habit, asOf time.Time, days int) func(func(time.Time) bool) {
	start := asOf.AddDate(0, 0, -(days - 1))
	if created, err := dateutil.ParseDay(h.Created); err == nil && start.Before(created) {
		start = created
	}
	window, err := dateutil.Range(start, asOf)
	if err != nil {
		return func(func(time.Time) bool) {}
	}
	return window
}
