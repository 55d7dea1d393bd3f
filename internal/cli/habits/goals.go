package habits

import (
	"context"

	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/validation"
)

type GoalsCmd struct {
	Show GoalsShowCmd `cmd:"" help:"Show daily goals." default:"1"`
	Set  GoalsSetCmd  `cmd:"" help:"Change one or more daily goals."`
}

type GoalsShowCmd struct{}

func (c *GoalsShowCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	goals, err := store.LoadGoals(context.Background())
	if err != nil {
		return err
	}
	ctx.Printf("%s", cli.FormatGoals(goals))
	return nil
}

// GoalsSetCmd takes raw text so that a non-numeric value is rejected like zero.
type GoalsSetCmd struct {
	Water   string `help:"Glasses of water per day."`
	Sleep   string `help:"Hours of sleep per day."`
	Workout string `help:"Workout sessions per day."`
}

func (c *GoalsSetCmd) Run(ctx *cli.Context) error {
	goals, res := validation.GoalsFromFields(map[string]string{
		"water":   c.Water,
		"sleep":   c.Sleep,
		"workout": c.Workout,
	})
	if res.HasIssues() {
		return res.Err()
	}
	if len(goals) == 0 {
		ctx.Printf("Nothing to change. Pass --water, --sleep or --workout.\n")
		return nil
	}

	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	if _, err := store.LoadGoals(context.Background()); err != nil {
		return err
	}
	saved, err := store.SaveGoals(context.Background(), goals)
	if err != nil {
		return err
	}
	ctx.Printf("Goals saved\n%s", cli.FormatGoals(saved))
	return nil
}
