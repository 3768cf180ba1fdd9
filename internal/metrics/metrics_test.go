package metrics

import (
	"testing"
	"time"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func habit(created string, checkins ...string) *models.Habit {
	h := &models.Habit{ID: 1, Name: "test", Created: created}
	for _, c := range checkins {
		h.AddCheckin(c)
	}
	return h
}

func TestCurrentStreak_EndsAtReferenceDate(t *testing.T) {
	// Checked Feb 1, 5, 6, 7; as of Feb 7 the trailing run is 5-6-7.
	h := habit("2026-02-01", "2026-02-01", "2026-02-05", "2026-02-06", "2026-02-07")
	asOf := day(t, "2026-02-07")

	if got := CurrentStreak(h, asOf); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
	if got := LongestStreak(h, asOf); got != 3 {
		t.Errorf("LongestStreak = %d, want 3", got)
	}
	if got := DaysSince(h, asOf); got != 0 {
		t.Errorf("DaysSince = %d, want 0", got)
	}
}

func TestCurrentStreak_UncheckedReferenceDateBreaks(t *testing.T) {
	h := habit("2026-02-01", "2026-02-05", "2026-02-06")
	if got := CurrentStreak(h, day(t, "2026-02-07")); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0 (reference day unchecked)", got)
	}
}

func TestCurrentStreak_ScheduledHabitSkipsOffDays(t *testing.T) {
	// Due mon/wed/fri, checked Mon Feb 2 and Wed Feb 4, nothing after.
	// As of Saturday Feb 7 the streak is broken by the missed Friday.
	h := habit("2026-02-01", "2026-02-02", "2026-02-04")
	h.Schedule = []string{"mon", "wed", "fri"}
	asOf := day(t, "2026-02-07")

	if got := CurrentStreak(h, asOf); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
	if got := LongestStreak(h, asOf); got != 2 {
		t.Errorf("LongestStreak = %d, want 2", got)
	}

	// As of Thursday the Friday miss has not happened yet
	if got := CurrentStreak(h, day(t, "2026-02-05")); got != 2 {
		t.Errorf("CurrentStreak as of Thursday = %d, want 2", got)
	}
}

func TestCurrentStreak_NeverChecked(t *testing.T) {
	h := habit("2026-02-01")
	asOf := day(t, "2026-02-07")
	if got := CurrentStreak(h, asOf); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
	if got := DaysSince(h, asOf); got != -1 {
		t.Errorf("DaysSince = %d, want -1", got)
	}
}

func TestLongestStreak_FindsPastRun(t *testing.T) {
	h := habit("2026-01-01",
		"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08",
		"2026-01-20")
	if got := LongestStreak(h, day(t, "2026-02-01")); got != 4 {
		t.Errorf("LongestStreak = %d, want 4", got)
	}
	if got := CurrentStreak(h, day(t, "2026-02-01")); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
}

func TestWeekPacing_NilWithoutGoal(t *testing.T) {
	h := habit("2026-02-01", "2026-02-02")
	if p := WeekPacing(h, day(t, "2026-02-05"), time.Monday); p != nil {
		t.Errorf("WeekPacing without a goal = %+v, want nil", p)
	}
}

func TestWeekPacing_Statuses(t *testing.T) {
	cases := []struct {
		name     string
		goal     int
		checkins []string
		asOf     string
		want     constants.PacingStatus
	}{
		// Goal 3, 2 check-ins, Thursday: need 1, 4 days left including Thursday
		{"on-track", 3, []string{"2026-02-02", "2026-02-03"}, "2026-02-05", constants.PacingOnTrack},
		// Goal met exactly
		{"met", 2, []string{"2026-02-02", "2026-02-03"}, "2026-02-05", constants.PacingMet},
		// Goal 7 from Thursday: need 5, only 4 days remain
		{"missed", 7, []string{"2026-02-02", "2026-02-03"}, "2026-02-05", constants.PacingMissed},
		// Goal 6: need 4 with exactly 4 days left, a perfect finish is required
		{"at-risk", 6, []string{"2026-02-02", "2026-02-03"}, "2026-02-05", constants.PacingAtRisk},
		// Sunday, last day of the Monday week: need 1 with 1 day left
		{"at-risk on last day", 3, []string{"2026-02-02", "2026-02-03"}, "2026-02-08", constants.PacingAtRisk},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := habit("2026-02-01", tc.checkins...)
			h.WeeklyGoal = &tc.goal
			p := WeekPacing(h, day(t, tc.asOf), time.Monday)
			if p == nil {
				t.Fatal("WeekPacing returned nil")
			}
			if p.Status != tc.want {
				t.Errorf("status = %s, want %s (count %d, remaining %d)", p.Status, tc.want, p.Count, p.Remaining)
			}
		})
	}
}

func TestCurrentStreak_FullHistoryEqualsDayCount(t *testing.T) {
	h := habit("2026-02-01")
	for d := 1; d <= 7; d++ {
		h.AddCheckin(dateutil.FormatDay(day(t, "2026-02-01").AddDate(0, 0, d-1)))
	}
	if got := CurrentStreak(h, day(t, "2026-02-07")); got != 7 {
		t.Errorf("checking every day since creation should give streak 7, got %d", got)
	}
}

func TestWeekPacing_MonotonicInGoal(t *testing.T) {
	// Raising the goal with fixed check-ins can only make the status worse
	rank := map[constants.PacingStatus]int{
		constants.PacingMet:     0,
		constants.PacingOnTrack: 1,
		constants.PacingAtRisk:  2,
		constants.PacingMissed:  3,
	}
	asOf := day(t, "2026-02-05")
	prev := -1
	for goal := 1; goal <= 10; goal++ {
		h := habit("2026-02-01", "2026-02-02", "2026-02-03")
		h.WeeklyGoal = &goal
		p := WeekPacing(h, asOf, time.Monday)
		if rank[p.Status] < prev {
			t.Fatalf("goal %d improved pacing to %s", goal, p.Status)
		}
		prev = rank[p.Status]
	}
}

func TestWeekPacing_IgnoresOtherWeeks(t *testing.T) {
	goal := 2
	h := habit("2026-01-01", "2026-01-28", "2026-02-03")
	h.WeeklyGoal = &goal
	p := WeekPacing(h, day(t, "2026-02-05"), time.Monday)
	if p.Count != 1 {
		t.Errorf("count = %d, want 1 (check-ins outside the week must not count)", p.Count)
	}
}

func TestCoverage_ClampsToCreation(t *testing.T) {
	// Created Feb 5, window of 28 days ending Feb 7 only spans 3 real days
	h := habit("2026-02-05", "2026-02-05", "2026-02-07")
	cov := Coverage(h, day(t, "2026-02-07"), 28)
	if cov.Scheduled != 3 {
		t.Errorf("scheduled = %d, want 3", cov.Scheduled)
	}
	if cov.Checked != 2 {
		t.Errorf("checked = %d, want 2", cov.Checked)
	}
	if len(cov.Missed) != 1 || cov.Missed[0] != "2026-02-06" {
		t.Errorf("missed = %v, want [2026-02-06]", cov.Missed)
	}
	if cov.Ratio < 0 || cov.Ratio > 1 {
		t.Errorf("ratio %v out of [0,1]", cov.Ratio)
	}
}

func TestCoverage_ScheduledDaysOnly(t *testing.T) {
	h := habit("2026-02-01", "2026-02-02", "2026-02-04", "2026-02-06")
	h.Schedule = []string{"mon", "wed", "fri"}
	cov := Coverage(h, day(t, "2026-02-07"), 7)
	// Window Feb 1..7 holds one mon, wed, fri each, all checked
	if cov.Scheduled != 3 {
		t.Errorf("scheduled = %d, want 3", cov.Scheduled)
	}
	if cov.Checked != 3 {
		t.Errorf("checked = %d, want 3", cov.Checked)
	}
	if cov.Ratio != 1 {
		t.Errorf("ratio = %v, want 1", cov.Ratio)
	}
}

func TestCoverage_EmptyWindowCoversTrivially(t *testing.T) {
	h := habit("2026-02-07")
	h.Schedule = []string{"mon"}
	cov := Coverage(h, day(t, "2026-02-07"), 1) // Saturday only, not scheduled
	if cov.Scheduled != 0 || cov.Ratio != 1 {
		t.Errorf("empty window: scheduled=%d ratio=%v, want 0 and 1", cov.Scheduled, cov.Ratio)
	}
}

func TestMomentum_Trend(t *testing.T) {
	asOf := day(t, "2026-02-28")
	windows := []int{7, 28}

	rising := habit("2026-01-01",
		"2026-02-23", "2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27", "2026-02-28")
	if got := Momentum(rising, asOf, windows).Trend; got != constants.TrendRising {
		t.Errorf("trend = %s, want rising", got)
	}

	fading := habit("2026-01-01",
		"2026-02-01", "2026-02-02", "2026-02-03", "2026-02-04", "2026-02-05",
		"2026-02-06", "2026-02-07", "2026-02-08", "2026-02-09", "2026-02-10")
	if got := Momentum(fading, asOf, windows).Trend; got != constants.TrendFading {
		t.Errorf("trend = %s, want fading", got)
	}

	steady := habit("2026-01-01")
	if got := Momentum(steady, asOf, windows).Trend; got != constants.TrendSteady {
		t.Errorf("trend = %s, want steady", got)
	}
}

func TestMomentum_SingleWindowIsSteady(t *testing.T) {
	h := habit("2026-01-01", "2026-02-27", "2026-02-28")
	res := Momentum(h, day(t, "2026-02-28"), []int{7})
	if res.Trend != constants.TrendSteady {
		t.Errorf("trend = %s, want steady with one window", res.Trend)
	}
	if len(res.Rates) != 1 {
		t.Errorf("rates = %d, want 1", len(res.Rates))
	}
}

func TestStale(t *testing.T) {
	asOf := day(t, "2026-02-20")
	fresh := habit("2026-01-01", "2026-02-18")
	if Stale(fresh, asOf, 7) {
		t.Error("habit checked 2 days ago should not be stale")
	}
	quiet := habit("2026-01-01", "2026-02-01")
	if !Stale(quiet, asOf, 7) {
		t.Error("habit quiet for 19 days should be stale")
	}
	boundary := habit("2026-01-01", "2026-02-13")
	if Stale(boundary, asOf, 7) {
		t.Error("exactly staleDays of silence is not yet stale")
	}
	neverOld := habit("2026-01-01")
	if !Stale(neverOld, asOf, 7) {
		t.Error("never-checked habit created long ago should be stale")
	}
	neverNew := habit("2026-02-18")
	if Stale(neverNew, asOf, 7) {
		t.Error("never-checked habit created 2 days ago should not be stale")
	}
}

func TestSummarizeWeekdays_CalendarWindow(t *testing.T) {
	// Due mon/wed/fri, checked Mon Feb 2 and Wed Feb 4
	h := habit("2026-02-01", "2026-02-02", "2026-02-04")
	h.Schedule = []string{"mon", "wed", "fri"}
	sum := SummarizeWeekdays(h, day(t, "2026-02-07"), 7)

	if sum.Actual["mon"] != 1 || sum.Actual["wed"] != 1 || sum.Actual["fri"] != 0 {
		t.Errorf("actual = %v", sum.Actual)
	}
	if sum.Expected["mon"] != 1 || sum.Expected["wed"] != 1 || sum.Expected["fri"] != 1 {
		t.Errorf("expected = %v", sum.Expected)
	}
	if sum.Expected["tue"] != 0 {
		t.Errorf("unscheduled weekday should expect 0, got %d", sum.Expected["tue"])
	}
	if sum.TotalActual != 2 || sum.TotalExpected != 3 {
		t.Errorf("totals = %d/%d, want 2/3", sum.TotalActual, sum.TotalExpected)
	}
}

func TestSummarizeWeekdays_WindowNotClampedToCreation(t *testing.T) {
	h := habit("2026-02-06")
	sum := SummarizeWeekdays(h, day(t, "2026-02-07"), 7)
	// Unscheduled habit: every calendar day in the window counts as expected
	if sum.TotalExpected != 7 {
		t.Errorf("TotalExpected = %d, want 7", sum.TotalExpected)
	}
}

func TestUpcomingDue(t *testing.T) {
	h := habit("2026-02-01")
	h.Schedule = []string{"mon", "wed", "fri"}
	// From Saturday Feb 7, 7 days ahead covers Feb 7..13
	got := UpcomingDue(h, day(t, "2026-02-07"), 7)
	want := []string{"2026-02-09", "2026-02-11", "2026-02-13"}
	if len(got) != len(want) {
		t.Fatalf("UpcomingDue = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UpcomingDue[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	daily := habit("2026-02-01")
	if got := UpcomingDue(daily, day(t, "2026-02-07"), 3); len(got) != 3 {
		t.Errorf("unscheduled habit should be due every day, got %v", got)
	}
}
