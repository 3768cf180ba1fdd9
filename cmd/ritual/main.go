package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/ritual/internal/cli"
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Snapshot file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`
	Remote  string `help:"Remote store connection string (postgres://... or a shared SQLite file path)."`
	Profile string `help:"Sync profile name (default: the snapshot's stored profile)."`

	Add        cli.AddCmd        `cmd:"" help:"Add a new habit."`
	List       cli.ListCmd       `cmd:"" help:"List habits."`
	Checkin    cli.CheckinCmd    `cmd:"" help:"Record a check-in for a habit."`
	CheckinAll cli.CheckinAllCmd `cmd:"" help:"Check in every habit due on a day."`
	Uncheck    cli.UncheckCmd    `cmd:"" help:"Remove a check-in."`
	Streak     cli.StreakCmd     `cmd:"" help:"Show the streak table."`
	Done       cli.DoneCmd       `cmd:"" help:"Archive a habit."`
	Reopen     cli.ReopenCmd     `cmd:"" help:"Reopen an archived habit."`
	Rename     cli.RenameCmd     `cmd:"" help:"Rename a habit."`
	Stats      cli.StatsCmd      `cmd:"" help:"Show store totals."`
	Report     cli.ReportCmd     `cmd:"" help:"Show the habit report."`
	History    cli.HistoryCmd    `cmd:"" help:"List recent check-ins."`
	Today      cli.TodayCmd      `cmd:"" help:"Show today's habit status."`
	Week       cli.WeekCmd       `cmd:"" help:"Show this week's progress and pacing."`
	Nudge      cli.NudgeCmd      `cmd:"" help:"Show habits that have gone stale."`
	Review     cli.ReviewCmd     `cmd:"" help:"Summarize a trailing window."`
	Coverage   cli.CoverageCmd   `cmd:"" help:"Show schedule coverage and missed days."`
	Timeline   cli.TimelineCmd   `cmd:"" help:"Show the day-by-day history grid."`
	Plan       cli.PlanCmd       `cmd:"" help:"Show upcoming scheduled days."`
	Momentum   cli.MomentumCmd   `cmd:"" help:"Compare check-in rates across windows."`
	Weekday    cli.WeekdayCmd    `cmd:"" help:"Break check-ins down by weekday."`
	Month      cli.MonthCmd      `cmd:"" help:"Show a calendar month grid."`
	Goal       cli.GoalCmd       `cmd:"" help:"Show, set, or clear a weekly goal."`
	Schedule   cli.ScheduleCmd   `cmd:"" help:"Show, set, or clear a weekday schedule."`
	Note       cli.NoteCmd       `cmd:"" help:"Show, set, or clear a note."`
	Export     cli.ExportCmd     `cmd:"" help:"Export habits as CSV."`
	Import     cli.ImportCmd     `cmd:"" help:"Import habits from CSV."`
	Sync       cli.SyncCmd       `cmd:"" help:"Pull, merge, and push against the remote store."`
	Pull       cli.PullCmd       `cmd:"" help:"Pull and merge from the remote store."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	provider := storage.NewJSONStore(CLI.Config)
	snap, err := provider.Load()
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := cli.NewContext(provider, &snap)
	appCtx.RemoteFlag = CLI.Remote
	appCtx.ProfileFlag = CLI.Profile

	errors.Fatal(ctx.Run(appCtx))
}
