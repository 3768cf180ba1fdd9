package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/report"
)

// maxNameLen is the column width habit names are padded or truncated to in
// grid views
const maxNameLen = 20

func padName(name string) string {
	if len(name) > maxNameLen {
		if maxNameLen >= 5 {
			return name[:maxNameLen-3] + "..."
		}
		return name[:maxNameLen]
	}
	return name + strings.Repeat(" ", maxNameLen-len(name))
}

type StreakCmd struct {
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Sort string `help:"Sort mode." enum:"current,longest,name,id" default:"current"`
	All  bool   `help:"Include archived habits."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	rows := report.BuildStreaks(ctx.Snapshot, asOf, c.All)
	if err := report.SortStreaks(rows, c.Sort); err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%3s  %-20s %8s %8s %6s  %-10s %s", "id", "habit", "current", "longest", "total", "last", "ago")))
	for _, r := range rows {
		last, ago := "-", "-"
		if r.DaysSince >= 0 {
			last = r.LastDay
			ago = fmt.Sprintf("%dd", r.DaysSince)
		}
		fmt.Printf("%3d  %-20s %8d %8d %6d  %-10s %s\n", r.ID, padName(r.Name), r.Current, r.Longest, r.Total, last, ago)
	}
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	st := report.BuildStats(ctx.Snapshot)
	if st.Total == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Total: %d\n", st.Total)
	fmt.Printf("Active: %d\n", st.ActiveCount)
	fmt.Printf("Archived: %d\n", st.Archived)
	fmt.Printf("Check-ins: %d\n", st.TotalCheckins)
	fmt.Printf("With goal: %d\n", st.WithGoal)
	fmt.Printf("With schedule: %d\n", st.WithSchedule)
	return nil
}

type ReportCmd struct {
	Date      string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	WeekStart string `help:"First day of the week." enum:"mon,sun" default:"mon"`
	Limit     int    `help:"Show at most this many habits."`
	All       bool   `help:"Include archived habits."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	ws, err := dateutil.ParseWeekStart(c.WeekStart)
	if err != nil {
		return err
	}
	rows := report.BuildReport(ctx.Snapshot, asOf, ws, constants.DefaultStaleDays, c.Limit, c.All)
	if len(rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Habit report for %s:\n\n", dateutil.FormatDay(asOf))
	for _, r := range rows {
		marker := " "
		if r.Stale {
			marker = staleStyle.Render("!")
		}
		fmt.Printf("%3d %s %-20s streak %3d (best %3d)  %s\n", r.ID, marker, padName(r.Name), r.Current, r.Longest, renderPacing(r.Pacing))
	}
	return nil
}

type TodayCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}
	tag, err := dateutil.TagOfDay(day)
	if err != nil {
		return err
	}
	view := report.BuildToday(ctx.Snapshot, day, tag)
	if len(view.Rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Habits for %s (%s):\n\n", day, tag)
	for _, r := range view.Rows {
		switch {
		case r.Checked:
			fmt.Printf("[x] %s\n", r.Name)
		case r.Due:
			fmt.Printf("[ ] %s\n", r.Name)
		default:
			fmt.Printf("%s\n", dimStyle.Render(" ·  "+r.Name+" (not scheduled)"))
		}
	}
	fmt.Printf("\nDone: %d/%d due\n", view.Checked, view.Due)
	return nil
}

type WeekCmd struct {
	Date      string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	WeekStart string `help:"First day of the week." enum:"mon,sun" default:"mon"`
	All       bool   `help:"Include archived habits."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	ws, err := dateutil.ParseWeekStart(c.WeekStart)
	if err != nil {
		return err
	}
	view := report.BuildWeek(ctx.Snapshot, asOf, ws, c.All)
	if len(view.Rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Week %s .. %s:\n\n", view.Start, view.End)
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for _, day := range view.Days {
		tag, _ := dateutil.TagOfDay(day)
		fmt.Printf(" %4s", tag)
	}
	fmt.Println()
	for _, r := range view.Rows {
		fmt.Print(padName(r.Name))
		for _, checked := range r.Days {
			if checked {
				fmt.Print("    x")
			} else {
				fmt.Print("    ·")
			}
		}
		fmt.Printf("  %s\n", renderPacing(r.Pacing))
	}
	return nil
}

type HistoryCmd struct {
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Days int    `help:"Number of days to include." default:"28"`
	All  bool   `help:"Include archived habits."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	rows := report.BuildHistory(ctx.Snapshot, asOf, c.Days, c.All)
	if len(rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Check-ins over the last %d days:\n\n", c.Days)
	for _, r := range rows {
		if len(r.Days) == 0 {
			fmt.Printf("%3d %s %s\n", r.ID, padName(r.Name), dimStyle.Render("none"))
			continue
		}
		fmt.Printf("%3d %s %s\n", r.ID, padName(r.Name), strings.Join(r.Days, " "))
	}
	return nil
}

type TimelineCmd struct {
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Days int    `help:"Number of days to show." default:"14"`
	All  bool   `help:"Include archived habits."`
}

func (c *TimelineCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	view := report.BuildTimeline(ctx.Snapshot, asOf, c.Days, c.All)
	if len(view.Rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Habit timeline (last %d days):\n\n", c.Days)

	fmt.Print(strings.Repeat(" ", maxNameLen))
	for _, day := range view.Days {
		fmt.Printf(" %5s", day[5:]) // MM-DD
	}
	fmt.Println()
	fmt.Print(strings.Repeat("-", maxNameLen))
	fmt.Println(strings.Repeat("------", len(view.Days)))

	for _, r := range view.Rows {
		fmt.Print(padName(r.Name))
		for _, cell := range r.Cells {
			switch {
			case cell.Checked:
				fmt.Print("   x  ")
			case cell.Due:
				fmt.Print("   .  ")
			default:
				fmt.Print("      ")
			}
		}
		fmt.Println()
	}
	return nil
}

type MonthCmd struct {
	Date string `help:"Any date inside the month to show (default: today)."`
	All  bool   `help:"Include archived habits."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	view := report.BuildMonth(ctx.Snapshot, asOf, c.All)
	if len(view.Rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("%s %d (%d check-ins):\n\n", view.Month, view.Year, view.Total)
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for d := 1; d <= view.DaysIn; d++ {
		fmt.Printf("%3d", d)
	}
	fmt.Println()
	for _, r := range view.Rows {
		fmt.Print(padName(r.Name))
		for _, checked := range r.Checked {
			if checked {
				fmt.Print("  x")
			} else {
				fmt.Print("  ·")
			}
		}
		fmt.Println()
	}
	return nil
}

type WeekdayCmd struct {
	ID   int    `arg:"" optional:"" help:"Limit the summary to one habit."`
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Days int    `help:"Window size in days." default:"28"`
}

func (c *WeekdayCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	if c.ID != 0 && ctx.Snapshot.Find(c.ID) == nil {
		return notFound(c.ID)
	}
	view := report.BuildWeekday(ctx.Snapshot, asOf, c.Days, c.ID)
	fmt.Printf("Weekday summary (last %d days):\n\n", view.Days)
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-4s %8s %8s", "day", "actual", "expected")))
	for _, line := range view.Lines {
		fmt.Printf("%-4s %8d %8d\n", line.Tag, line.Actual, line.Expected)
	}
	fmt.Printf("\nTotal: %d/%d\n", view.TotalActual, view.TotalExpected)
	return nil
}
