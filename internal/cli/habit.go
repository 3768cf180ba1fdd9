package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/ritual/internal/validation"
)

type AddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Creation date in YYYY-MM-DD format (default: today)."`
}

func (c *AddCmd) Run(ctx *Context) error {
	day, err := ctx.Day(c.Date)
	if err != nil {
		return err
	}
	h, err := ctx.Habits.Create(c.Name, day)
	if err != nil {
		return err
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Added habit #%d: %s\n", h.ID, h.Name)
	return nil
}

type ListCmd struct {
	All bool `help:"Include archived habits."`
}

func (c *ListCmd) Run(ctx *Context) error {
	habits := ctx.Habits.List(c.All)
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	for _, h := range habits {
		status := "·"
		if h.Archived {
			status = "✓"
		}
		var extras []string
		if h.WeeklyGoal != nil {
			extras = append(extras, fmt.Sprintf("goal %d/wk", *h.WeeklyGoal))
		}
		if h.IsScheduled() {
			extras = append(extras, strings.Join(h.Schedule, ","))
		}
		if h.Note != nil {
			extras = append(extras, "note")
		}
		suffix := ""
		if len(extras) > 0 {
			suffix = dimStyle.Render("  [" + strings.Join(extras, "; ") + "]")
		}
		fmt.Printf("%3d %s %s%s\n", h.ID, status, h.Name, suffix)
	}
	return nil
}

type RenameCmd struct {
	ID   int    `arg:"" help:"Habit id."`
	Name string `arg:"" help:"New habit name."`
}

func (c *RenameCmd) Run(ctx *Context) error {
	old, err := ctx.Habits.Rename(c.ID, c.Name)
	if err != nil {
		return err
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	h := ctx.Snapshot.Find(c.ID)
	fmt.Printf("Renamed habit #%d: %s -> %s\n", c.ID, old, h.Name)
	return nil
}

type DoneCmd struct {
	ID int `arg:"" help:"Habit id."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	changed, err := ctx.Habits.Archive(c.ID)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("Habit #%d is already archived.\n", c.ID)
		return nil
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Archived habit #%d: %s\n", c.ID, ctx.Snapshot.Find(c.ID).Name)
	return nil
}

type ReopenCmd struct {
	ID int `arg:"" help:"Habit id."`
}

func (c *ReopenCmd) Run(ctx *Context) error {
	changed, err := ctx.Habits.Reopen(c.ID)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("Habit #%d is not archived.\n", c.ID)
		return nil
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Reopened habit #%d: %s\n", c.ID, ctx.Snapshot.Find(c.ID).Name)
	return nil
}

type GoalCmd struct {
	ID    int  `arg:"" help:"Habit id."`
	Goal  int  `arg:"" optional:"" help:"Weekly check-in target (omit to show the current goal)."`
	Clear bool `help:"Remove the weekly goal."`
}

func (c *GoalCmd) Run(ctx *Context) error {
	if c.Clear {
		if err := ctx.Habits.ClearGoal(c.ID); err != nil {
			return err
		}
		if err := ctx.Persist(); err != nil {
			return err
		}
		fmt.Printf("Cleared goal for habit #%d.\n", c.ID)
		return nil
	}
	if c.Goal == 0 {
		h := ctx.Snapshot.Find(c.ID)
		if h == nil {
			return notFound(c.ID)
		}
		if h.WeeklyGoal == nil {
			fmt.Printf("Habit #%d has no weekly goal.\n", c.ID)
		} else {
			fmt.Printf("Habit #%d goal: %d check-ins per week.\n", c.ID, *h.WeeklyGoal)
		}
		return nil
	}
	if err := ctx.Habits.SetGoal(c.ID, c.Goal); err != nil {
		return err
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Set goal for habit #%d: %d check-ins per week.\n", c.ID, c.Goal)
	return nil
}

type ScheduleCmd struct {
	ID    int    `arg:"" help:"Habit id."`
	Days  string `arg:"" optional:"" help:"Comma-separated weekdays, e.g. mon,wed,fri (omit to show the current schedule)."`
	Clear bool   `help:"Remove the schedule (due every day)."`
}

func (c *ScheduleCmd) Run(ctx *Context) error {
	if c.Clear {
		if err := ctx.Habits.ClearSchedule(c.ID); err != nil {
			return err
		}
		if err := ctx.Persist(); err != nil {
			return err
		}
		fmt.Printf("Cleared schedule for habit #%d.\n", c.ID)
		return nil
	}
	if c.Days == "" {
		h := ctx.Snapshot.Find(c.ID)
		if h == nil {
			return notFound(c.ID)
		}
		if !h.IsScheduled() {
			fmt.Printf("Habit #%d is due every day.\n", c.ID)
		} else {
			fmt.Printf("Habit #%d schedule: %s\n", c.ID, strings.Join(h.Schedule, ","))
		}
		return nil
	}
	tags, err := validation.Weekdays(c.Days)
	if err != nil {
		return err
	}
	if err := ctx.Habits.SetSchedule(c.ID, tags); err != nil {
		return err
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Set schedule for habit #%d: %s\n", c.ID, strings.Join(tags, ","))
	return nil
}

type NoteCmd struct {
	ID    int    `arg:"" help:"Habit id."`
	Text  string `arg:"" optional:"" help:"Note text (omit to show the current note)."`
	Clear bool   `help:"Remove the note."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	if c.Clear {
		if err := ctx.Habits.ClearNote(c.ID); err != nil {
			return err
		}
		if err := ctx.Persist(); err != nil {
			return err
		}
		fmt.Printf("Cleared note for habit #%d.\n", c.ID)
		return nil
	}
	if c.Text == "" {
		h := ctx.Snapshot.Find(c.ID)
		if h == nil {
			return notFound(c.ID)
		}
		if h.Note == nil {
			fmt.Printf("Habit #%d has no note.\n", c.ID)
		} else {
			fmt.Printf("Habit #%d note: %s\n", c.ID, *h.Note)
		}
		return nil
	}
	if err := ctx.Habits.SetNote(c.ID, c.Text); err != nil {
		return err
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Set note for habit #%d.\n", c.ID)
	return nil
}
