package habits

import (
	"context"
	"fmt"

	"github.com/julianstephens/wellfit/internal/chart"
	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/week"
)

type WeekCmd struct {
	Date string `help:"Any date in the week to show, YYYY-MM-DD (default: today)." default:""`
	Prev int    `help:"Show the week N weeks before." default:"0"`
	Next int    `help:"Show the week N weeks after." default:"0"`
	HTML string `help:"Also write the week as an HTML chart to this file." name:"html" type:"path"`
}

// anchor resolves the flags to the Monday of the requested week.
func (c *WeekCmd) anchor(today string) (string, error) {
	if c.Prev < 0 || c.Next < 0 {
		return "", fmt.Errorf("--prev and --next must not be negative")
	}
	if c.Prev > 0 && c.Next > 0 {
		return "", fmt.Errorf("use either --prev or --next, not both")
	}

	base := today
	if c.Date != "" {
		base = c.Date
	}
	d, err := week.ParseDate(base)
	if err != nil {
		return "", err
	}
	anchor := week.Start(d)

	dir, n := week.Next, c.Next
	if c.Prev > 0 {
		dir, n = week.Previous, c.Prev
	}
	for i := 0; i < n; i++ {
		if anchor, err = week.ShiftWeek(anchor, dir); err != nil {
			return "", err
		}
	}
	return anchor, nil
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	clock, err := ctx.Clock()
	if err != nil {
		return err
	}
	today := week.FormatDate(week.Date(clock()))

	anchor, err := c.anchor(today)
	if err != nil {
		return err
	}
	if err := store.Load(context.Background(), anchor); err != nil {
		return err
	}
	data, ok := store.Week()
	if !ok {
		return fmt.Errorf("no week data available")
	}

	current := data.WeekStart == week.Start(clock())
	header := "Week of " + data.WeekStart
	if current {
		header += " (this week)"
	}
	ctx.Printf("%s\n\n", header)

	todayIdx := -1
	if current {
		todayIdx = store.DayIndexToday()
	}
	for _, v := range store.Views() {
		ctx.Printf("%s\n", cli.FormatHabit(v, todayIdx))
	}

	if c.HTML != "" {
		if err := chart.WriteWeekFile(c.HTML, data, store.Goals()); err != nil {
			return err
		}
		ctx.Printf("Chart written to %s\n", c.HTML)
	}
	return nil
}
