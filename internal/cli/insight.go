package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/report"
	"github.com/julianstephens/ritual/internal/validation"
)

type NudgeCmd struct {
	Date  string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Days  int    `help:"Days of silence before a habit counts as stale." default:"7"`
	Limit int    `help:"Show at most this many habits." default:"3"`
}

func (c *NudgeCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	rows := report.BuildNudge(ctx.Snapshot, asOf, c.Days, c.Limit)
	if len(rows) == 0 {
		fmt.Println("Nothing is stale. Keep going!")
		return nil
	}
	fmt.Println("Habits that need attention:")
	for _, r := range rows {
		if r.NeverChecked {
			fmt.Printf("%3d  %s %s\n", r.ID, padName(r.Name), staleStyle.Render("never checked in"))
			continue
		}
		fmt.Printf("%3d  %s %s\n", r.ID, padName(r.Name), staleStyle.Render(fmt.Sprintf("last check-in %d days ago", r.DaysSince)))
	}
	return nil
}

type ReviewCmd struct {
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Days int    `help:"Window size in days." default:"28"`
}

func (c *ReviewCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	view := report.BuildReview(ctx.Snapshot, asOf, c.Days, constants.DefaultStaleDays)
	if view.Habits == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Review of the last %d days:\n\n", view.Days)
	fmt.Printf("Habits: %d\n", view.Habits)
	fmt.Printf("Check-ins: %d\n", view.TotalCheckins)
	fmt.Printf("Average coverage: %.0f%%\n", view.AvgCoverage*100)
	if view.Best != nil {
		fmt.Printf("Best: %s (%.0f%%)\n", view.Best.Name, view.Best.Coverage.Ratio*100)
	}
	if view.Worst != nil {
		fmt.Printf("Worst: %s (%.0f%%)\n", view.Worst.Name, view.Worst.Coverage.Ratio*100)
	}
	if view.StaleCount > 0 {
		fmt.Println(staleStyle.Render(fmt.Sprintf("Stale habits: %d", view.StaleCount)))
	}
	return nil
}

type CoverageCmd struct {
	Date  string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Days  int    `help:"Window size in days." default:"28"`
	Limit int    `help:"Show at most this many habits."`
	All   bool   `help:"Include archived habits."`
}

func (c *CoverageCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	rows := report.BuildCoverage(ctx.Snapshot, asOf, c.Days, c.Limit, c.All)
	if len(rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Schedule coverage over the last %d days:\n\n", c.Days)
	for _, r := range rows {
		cov := r.Coverage
		fmt.Printf("%3d  %s %3.0f%% (%d/%d)", r.ID, padName(r.Name), cov.Ratio*100, cov.Checked, cov.Scheduled)
		if n := len(cov.Missed); n > 0 {
			show := cov.Missed
			if n > 5 {
				show = show[n-5:]
			}
			fmt.Printf("  %s", dimStyle.Render("missed "+strings.Join(show, " ")))
			if n > len(show) {
				fmt.Printf(" %s", dimStyle.Render(fmt.Sprintf("(+%d more)", n-len(show))))
			}
		}
		fmt.Println()
	}
	return nil
}

type PlanCmd struct {
	Date string `help:"Start date in YYYY-MM-DD format (default: today)."`
	Days int    `help:"Days to look ahead." default:"7"`
}

func (c *PlanCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	rows := report.BuildPlan(ctx.Snapshot, asOf, c.Days)
	if len(rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Printf("Scheduled days for the next %d days:\n\n", c.Days)
	for _, r := range rows {
		if len(r.Days) == 0 {
			fmt.Printf("%3d  %s %s\n", r.ID, padName(r.Name), dimStyle.Render("not scheduled"))
			continue
		}
		fmt.Printf("%3d  %s %s\n", r.ID, padName(r.Name), strings.Join(r.Days, " "))
	}
	return nil
}

type MomentumCmd struct {
	Date    string `help:"Reference date in YYYY-MM-DD format (default: today)."`
	Windows string `help:"Comma-separated window sizes in days." default:"7,28"`
	All     bool   `help:"Include archived habits."`
}

func (c *MomentumCmd) Run(ctx *Context) error {
	asOf, err := ctx.AsOf(c.Date)
	if err != nil {
		return err
	}
	windows, err := validation.Windows(c.Windows)
	if err != nil {
		return err
	}
	rows := report.BuildMomentum(ctx.Snapshot, asOf, windows, c.All)
	if len(rows) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Println("Momentum:")
	for _, r := range rows {
		var rates []string
		for _, wr := range r.Momentum.Rates {
			rates = append(rates, fmt.Sprintf("%dd %3.0f%%", wr.Days, wr.Rate*100))
		}
		fmt.Printf("%3d  %s %s  %s\n", r.ID, padName(r.Name), strings.Join(rates, "  "), renderTrend(r.Momentum.Trend))
	}
	return nil
}
