package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/gateway"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/session"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/tui"
	"github.com/julianstephens/wellfit/internal/utils"
	"github.com/julianstephens/wellfit/internal/week"
)

type TuiCmd struct {
	Demo bool `help:"Run against an in-memory server with sample data."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	clock, err := ctx.Clock()
	if err != nil {
		return err
	}

	var model tui.Model
	if c.Demo {
		model, err = demoModel(clock)
	} else {
		model, err = liveModel(ctx, clock)
	}
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}

func liveModel(ctx *cli.Context, clock utils.Clock) (tui.Model, error) {
	guard, err := ctx.Guard()
	if err != nil {
		return tui.Model{}, err
	}
	gw, err := ctx.Gateway()
	if err != nil {
		return tui.Model{}, err
	}
	store := tracker.New(gw, tracker.WithClock(clock))
	return tui.NewModel(guard, store, tui.WithClock(clock)), nil
}

const (
	demoEmail    = "demo@wellfit.local"
	demoPassword = "demo"
)

// demoGateway returns a fake server holding a plausible week so far.
func demoGateway(clock utils.Clock) *gateway.Fake {
	fake := gateway.NewFake(clock())
	for i, day := range week.Days(week.NormalizeToMonday(fake.Today)) {
		if day > week.FormatDate(fake.Today) {
			break
		}
		seed(fake, models.HabitWater, day, 5+i%4)
		seed(fake, models.HabitSleep, day, 6+i%3)
		seed(fake, models.HabitWorkout, day, i%2)
	}
	fake.Users[demoEmail] = demoPassword
	return fake
}

func demoModel(clock utils.Clock) (tui.Model, error) {
	fake := demoGateway(clock)
	creds := session.NewMemoryStore()
	guard := session.NewGuard(fake, creds)
	token, err := fake.Login(context.Background(), models.Credentials{Email: demoEmail, Password: demoPassword})
	if err != nil {
		return tui.Model{}, err
	}
	if err := creds.Save(token); err != nil {
		return tui.Model{}, err
	}
	guard.Resolve()

	store := tracker.New(fake, tracker.WithClock(clock))
	return tui.NewModel(guard, store, tui.WithClock(clock)), nil
}

func seed(f *gateway.Fake, kind models.HabitKind, day string, v int) {
	if f.Values[kind] == nil {
		f.Values[kind] = map[string]int{}
	}
	f.Values[kind][day] = v
}
