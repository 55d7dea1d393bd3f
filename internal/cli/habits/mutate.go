package habits

import (
	"context"
	"fmt"

	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/week"
)

type IncCmd struct {
	Kind string `arg:"" help:"Habit: water, sleep or workout."`
	Date string `help:"Day to change, YYYY-MM-DD (default: today)." default:""`
}

func (c *IncCmd) Run(ctx *cli.Context) error {
	return change(ctx, c.Kind, c.Date, tracker.Increment)
}

type DecCmd struct {
	Kind string `arg:"" help:"Habit: water, sleep or workout."`
	Date string `help:"Day to change, YYYY-MM-DD (default: today)." default:""`
}

func (c *DecCmd) Run(ctx *cli.Context) error {
	return change(ctx, c.Kind, c.Date, tracker.Decrement)
}

type SetCmd struct {
	Kind  string `arg:"" help:"Habit: water, sleep or workout."`
	Value int    `arg:"" help:"New value for the day."`
	Date  string `help:"Day to change, YYYY-MM-DD (default: today)." default:""`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	kind, err := models.ParseHabitKind(c.Kind)
	if err != nil {
		return err
	}
	if _, err := ctx.RequireSession(); err != nil {
		return err
	}
	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}
	value := c.Value
	if err := gw.Mutate(context.Background(), models.MutateRequest{Type: kind, Op: models.OpSet, Value: &value, Date: c.Date}); err != nil {
		return err
	}
	return printDay(ctx, kind, c.Date)
}

// change applies one increment or decrement. Today's value goes through the
// tracker; an explicit date is sent to the API directly.
func change(ctx *cli.Context, rawKind, date string, intent tracker.Intent) error {
	kind, err := models.ParseHabitKind(rawKind)
	if err != nil {
		return err
	}

	if date == "" {
		store, err := ctx.Tracker()
		if err != nil {
			return err
		}
		if _, err := store.LoadGoals(context.Background()); err != nil {
			return err
		}
		if err := store.Mutate(context.Background(), kind, intent); err != nil {
			return err
		}
		v := store.View(kind)
		ctx.Printf("%s today: %d/%d %s\n", kind.Title(), v.Today, v.Goal, cli.ProgressBar(v.Progress))
		return nil
	}

	if _, err := ctx.RequireSession(); err != nil {
		return err
	}
	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}
	op := models.OpIncrement
	if intent == tracker.Decrement {
		op = models.OpDecrement
	}
	if err := gw.Mutate(context.Background(), models.MutateRequest{Type: kind, Op: op, Date: date}); err != nil {
		return err
	}
	return printDay(ctx, kind, date)
}

// printDay re-reads the week containing date and prints that day's value.
func printDay(ctx *cli.Context, kind models.HabitKind, date string) error {
	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}
	if date == "" {
		clock, err := ctx.Clock()
		if err != nil {
			return err
		}
		date = week.FormatDate(week.Date(clock()))
	}
	data, err := gw.FetchWeek(context.Background(), date)
	if err != nil {
		return err
	}
	for _, e := range data.SeriesFor(kind) {
		if e.Day == date {
			ctx.Printf("%s on %s: %d\n", kind.Title(), date, e.Value)
			return nil
		}
	}
	return fmt.Errorf("day %s missing from week %s", date, data.WeekStart)
}
