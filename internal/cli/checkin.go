package cli

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/validation"
)

type CheckinCmd struct {
	ID    int    `arg:"" help:"Habit id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)."`
	Start string `help:"Start of an inclusive date range."`
	End   string `help:"End of an inclusive date range."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if (c.Start == "") != (c.End == "") {
		return errors.Validationf("--start and --end must be given together")
	}
	if c.Start != "" {
		start, end, err := validation.DayRange(c.Start, c.End)
		if err != nil {
			return err
		}
		added, err := ctx.Habits.CheckinRange(c.ID, start, end)
		if err != nil {
			return err
		}
		if err := ctx.Persist(); err != nil {
			return err
		}
		fmt.Printf("Checked in habit #%d for %d day(s) between %s and %s.\n", c.ID, added, start, end)
		return nil
	}

	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}
	added, err := ctx.Habits.Checkin(c.ID, day)
	if err != nil {
		return err
	}
	if !added {
		fmt.Printf("Habit #%d is already checked in for %s.\n", c.ID, day)
		return nil
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Checked in habit #%d for %s.\n", c.ID, day)
	return nil
}

type CheckinAllCmd struct {
	Date               string `help:"Date in YYYY-MM-DD format (default: today)."`
	IncludeUnscheduled bool   `help:"Also check in habits not scheduled on that day."`
}

func (c *CheckinAllCmd) Run(ctx *Context) error {
	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}
	marked, err := ctx.Habits.CheckinAll(day, c.IncludeUnscheduled)
	if err != nil {
		return err
	}
	if len(marked) == 0 {
		fmt.Printf("Nothing to check in for %s.\n", day)
		return nil
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Checked in %d habit(s) for %s.\n", len(marked), day)
	return nil
}

type UncheckCmd struct {
	ID    int    `arg:"" help:"Habit id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)."`
	Start string `help:"Start of an inclusive date range."`
	End   string `help:"End of an inclusive date range."`
}

func (c *UncheckCmd) Run(ctx *Context) error {
	if (c.Start == "") != (c.End == "") {
		return errors.Validationf("--start and --end must be given together")
	}
	if c.Start != "" {
		start, end, err := validation.DayRange(c.Start, c.End)
		if err != nil {
			return err
		}
		removed, err := ctx.Habits.UncheckRange(c.ID, start, end)
		if err != nil {
			return err
		}
		if err := ctx.Persist(); err != nil {
			return err
		}
		fmt.Printf("Unchecked habit #%d for %d day(s) between %s and %s.\n", c.ID, removed, start, end)
		return nil
	}

	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}
	removed, err := ctx.Habits.Uncheck(c.ID, day)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("Habit #%d has no check-in for %s.\n", c.ID, day)
		return nil
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Unchecked habit #%d for %s.\n", c.ID, day)
	return nil
}
