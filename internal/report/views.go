package report

import (
	"slices"
	"time"

	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/metrics"
	"github.com/julianstephens/ritual/internal/models"
)

// CoverageRow is one habit's schedule adherence over a window
type CoverageRow struct {
	ID       int
	Name     string
	Coverage metrics.CoverageResult
}

// BuildCoverage computes coverage per habit over the `days`-day window
// ending at asOf, worst coverage first.
func BuildCoverage(snap *models.Snapshot, asOf time.Time, days, limit int, all bool) []CoverageRow {
	var rows []CoverageRow
	for _, h := range visible(snap, all) {
		rows = append(rows, CoverageRow{
			ID:       h.ID,
			Name:     h.Name,
			Coverage: metrics.Coverage(&h, asOf, days),
		})
	}
	slices.SortStableFunc(rows, func(a, b CoverageRow) int {
		switch {
		case a.Coverage.Ratio < b.Coverage.Ratio:
			return -1
		case a.Coverage.Ratio > b.Coverage.Ratio:
			return 1
		default:
			return a.ID - b.ID
		}
	})
	return truncate(rows, limit)
}

// TimelineCell is one day in a habit's timeline row
type TimelineCell struct {
	Day     string
	Due     bool
	Checked bool
}

// TimelineRow is one habit's recent history as a day grid
type TimelineRow struct {
	ID    int
	Name  string
	Cells []TimelineCell
}

// TimelineView is the ASCII-history grid across habits
type TimelineView struct {
	Days []string
	Rows []TimelineRow
}

// BuildTimeline lays out the trailing `days`-day grid: per habit, per day,
// whether it was due and whether it was checked.
func BuildTimeline(snap *models.Snapshot, asOf time.Time, days int, all bool) TimelineView {
	view := TimelineView{}
	start := asOf.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		view.Days = append(view.Days, dateutil.FormatDay(start.AddDate(0, 0, i)))
	}
	for _, h := range visible(snap, all) {
		row := TimelineRow{ID: h.ID, Name: h.Name}
		for i := 0; i < days; i++ {
			d := start.AddDate(0, 0, i)
			day := dateutil.FormatDay(d)
			row.Cells = append(row.Cells, TimelineCell{
				Day:     day,
				Due:     h.DueOnTag(dateutil.Tag(d)),
				Checked: h.Checked(day),
			})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// PlanRow lists a habit's upcoming scheduled days
type PlanRow struct {
	ID   int
	Name string
	Days []string
}

// BuildPlan looks forward from asOf over the next `days` days and lists the
// dates each habit is scheduled on.
func BuildPlan(snap *models.Snapshot, asOf time.Time, days int) []PlanRow {
	var rows []PlanRow
	for _, h := range snap.Active() {
		rows = append(rows, PlanRow{
			ID:   h.ID,
			Name: h.Name,
			Days: metrics.UpcomingDue(&h, asOf, days),
		})
	}
	return rows
}

// MomentumRow is one habit's multi-window momentum
type MomentumRow struct {
	ID       int
	Name     string
	Momentum metrics.MomentumResult
}

// BuildMomentum computes windowed check-in rates per habit
func BuildMomentum(snap *models.Snapshot, asOf time.Time, windows []int, all bool) []MomentumRow {
	var rows []MomentumRow
	for _, h := range visible(snap, all) {
		rows = append(rows, MomentumRow{
			ID:       h.ID,
			Name:     h.Name,
			Momentum: metrics.Momentum(&h, asOf, windows),
		})
	}
	return rows
}

// WeekdayLine is one weekday's actual vs expected check-in counts
type WeekdayLine struct {
	Tag      string
	Actual   int
	Expected int
}

// WeekdayView breaks check-ins down by weekday across habits
type WeekdayView struct {
	Days          int
	Lines         []WeekdayLine // Monday-first
	TotalActual   int
	TotalExpected int
}

// BuildWeekday aggregates per-weekday actual and expected counts over the
// trailing window. When id is non-zero only that habit is summarized,
// archived or not.
func BuildWeekday(snap *models.Snapshot, asOf time.Time, days, id int) WeekdayView {
	view := WeekdayView{Days: days}
	actual := make(map[string]int)
	expected := make(map[string]int)

	habits := snap.Active()
	if id != 0 {
		habits = nil
		if h := snap.Find(id); h != nil {
			habits = []models.Habit{*h}
		}
	}
	for i := range habits {
		sum := metrics.SummarizeWeekdays(&habits[i], asOf, days)
		for tag, n := range sum.Actual {
			actual[tag] += n
		}
		for tag, n := range sum.Expected {
			expected[tag] += n
		}
		view.TotalActual += sum.TotalActual
		view.TotalExpected += sum.TotalExpected
	}
	for _, tag := range dateutil.WeekOrder(time.Monday) {
		view.Lines = append(view.Lines, WeekdayLine{
			Tag:      tag,
			Actual:   actual[tag],
			Expected: expected[tag],
		})
	}
	return view
}

// MonthRow is one habit's check-in marks over a calendar month
type MonthRow struct {
	ID      int
	Name    string
	Checked []bool // indexed by day-of-month - 1
}

// MonthView is the calendar-month grid across habits
type MonthView struct {
	Year     int
	Month    time.Month
	DaysIn   int
	Rows     []MonthRow
	Total    int
	FirstTag string // weekday tag of the 1st
}

// BuildMonth lays out the calendar month containing asOf
func BuildMonth(snap *models.Snapshot, asOf time.Time, all bool) MonthView {
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	view := MonthView{
		Year:     first.Year(),
		Month:    first.Month(),
		DaysIn:   daysIn,
		FirstTag: dateutil.Tag(first),
	}
	for _, h := range visible(snap, all) {
		row := MonthRow{ID: h.ID, Name: h.Name, Checked: make([]bool, daysIn)}
		for i := 0; i < daysIn; i++ {
			day := dateutil.FormatDay(first.AddDate(0, 0, i))
			if h.Checked(day) {
				row.Checked[i] = true
				view.Total++
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// NudgeRow is one habit ranked by how badly it needs attention
type NudgeRow struct {
	ID           int
	Name         string
	DaysSince    int // -1 when never checked in
	NeverChecked bool
}

// BuildNudge ranks active habits by staleness: never-checked habits first,
// then by days since the last check-in, descending. Only stale habits
// appear; an empty result means everything is on schedule.
func BuildNudge(snap *models.Snapshot, asOf time.Time, staleDays, limit int) []NudgeRow {
	var rows []NudgeRow
	for _, h := range snap.Active() {
		if !metrics.Stale(&h, asOf, staleDays) {
			continue
		}
		since := metrics.DaysSince(&h, asOf)
		rows = append(rows, NudgeRow{
			ID:           h.ID,
			Name:         h.Name,
			DaysSince:    since,
			NeverChecked: since < 0,
		})
	}
	slices.SortStableFunc(rows, func(a, b NudgeRow) int {
		if a.NeverChecked != b.NeverChecked {
			if a.NeverChecked {
				return -1
			}
			return 1
		}
		if a.DaysSince != b.DaysSince {
			return b.DaysSince - a.DaysSince
		}
		return a.ID - b.ID
	})
	return truncate(rows, limit)
}

// ReviewView is the trailing-window summary across habits
type ReviewView struct {
	Days          int
	Habits        int
	TotalCheckins int
	AvgCoverage   float64
	Best          *CoverageRow
	Worst         *CoverageRow
	StaleCount    int
}

// BuildReview summarizes the last `days` days: total check-ins, average
// coverage, and the best and worst covered habits.
func BuildReview(snap *models.Snapshot, asOf time.Time, days, staleDays int) ReviewView {
	view := ReviewView{Days: days}
	rows := BuildCoverage(snap, asOf, days, 0, false)
	view.Habits = len(rows)
	if len(rows) == 0 {
		return view
	}
	var sum float64
	for i := range rows {
		sum += rows[i].Coverage.Ratio
		view.TotalCheckins += rows[i].Coverage.Checked
	}
	view.AvgCoverage = sum / float64(len(rows))
	// BuildCoverage sorts worst first
	view.Worst = &rows[0]
	view.Best = &rows[len(rows)-1]
	for _, h := range snap.Active() {
		if metrics.Stale(&h, asOf, staleDays) {
			view.StaleCount++
		}
	}
	return view
}
