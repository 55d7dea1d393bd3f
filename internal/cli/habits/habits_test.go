package habits

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/cli/clitest"
)

func TestWeekCmdAnchor(t *testing.T) {
	tests := []struct {
		name    string
		cmd     WeekCmd
		want    string
		wantErr bool
	}{
		{"today", WeekCmd{}, "2025-06-02", false},
		{"explicit date", WeekCmd{Date: "2025-01-01"}, "2024-12-30", false},
		{"two weeks back", WeekCmd{Prev: 2}, "2025-05-19", false},
		{"next across month", WeekCmd{Date: "2025-06-30", Next: 1}, "2025-07-07", false},
		{"both directions", WeekCmd{Prev: 1, Next: 1}, "", true},
		{"negative", WeekCmd{Prev: -1}, "", true},
		{"bad date", WeekCmd{Date: "June 4"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.anchor("2025-06-04")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandsRequireSession(t *testing.T) {
	env := clitest.New(t)

	assert.ErrorIs(t, (&IncCmd{Kind: "water"}).Run(env.Ctx), cli.ErrNotLoggedIn)
	assert.ErrorIs(t, (&WeekCmd{}).Run(env.Ctx), cli.ErrNotLoggedIn)
	assert.ErrorIs(t, (&GoalsShowCmd{}).Run(env.Ctx), cli.ErrNotLoggedIn)
	assert.ErrorIs(t, (&SetCmd{Kind: "sleep", Value: 3}).Run(env.Ctx), cli.ErrNotLoggedIn)
}

func TestIncDecToday(t *testing.T) {
	env := clitest.LoggedIn(t)

	require.NoError(t, (&IncCmd{Kind: "water"}).Run(env.Ctx))
	require.NoError(t, (&IncCmd{Kind: "water"}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "Water Intake today: 2/8")

	env.Reset()
	for i := 0; i < 3; i++ {
		require.NoError(t, (&DecCmd{Kind: "water"}).Run(env.Ctx))
	}
	assert.Contains(t, env.Out.String(), "Water Intake today: 0/8")
	assert.NotContains(t, env.Out.String(), "-1")
}

func TestIncUsesStoredGoal(t *testing.T) {
	env := clitest.LoggedIn(t)
	require.NoError(t, (&GoalsSetCmd{Water: "12"}).Run(env.Ctx))

	// A new process starts with a fresh tracker.
	next := clitest.NewContext(env.URL)
	next.Creds = env.Creds
	next.Ctx.Creds = env.Creds

	require.NoError(t, (&IncCmd{Kind: "water"}).Run(next.Ctx))
	assert.Contains(t, next.Out.String(), "Water Intake today: 1/12")
	assert.NotContains(t, next.Out.String(), "/8")

	next.Reset()
	require.NoError(t, (&DecCmd{Kind: "water"}).Run(next.Ctx))
	assert.Contains(t, next.Out.String(), "Water Intake today: 0/12")
}

func TestChangeRejectsUnknownKind(t *testing.T) {
	env := clitest.LoggedIn(t)
	assert.Error(t, (&IncCmd{Kind: "steps"}).Run(env.Ctx))
	assert.Error(t, (&SetCmd{Kind: "steps", Value: 1}).Run(env.Ctx))
}

func TestChangeExplicitDate(t *testing.T) {
	env := clitest.LoggedIn(t)

	require.NoError(t, (&SetCmd{Kind: "sleep", Value: 6, Date: "2025-06-03"}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "Sleep Hours on 2025-06-03: 6")

	env.Reset()
	require.NoError(t, (&IncCmd{Kind: "sleep", Date: "2025-06-03"}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "Sleep Hours on 2025-06-03: 7")

	env.Reset()
	require.NoError(t, (&DecCmd{Kind: "workout", Date: "2025-06-03"}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "Workout on 2025-06-03: 0")
}

func TestWeekCmdPastWeek(t *testing.T) {
	env := clitest.LoggedIn(t)
	require.NoError(t, (&SetCmd{Kind: "water", Value: 5, Date: "2025-06-04"}).Run(env.Ctx))
	env.Reset()

	html := filepath.Join(t.TempDir(), "week.html")
	require.NoError(t, (&WeekCmd{Date: "2025-06-08", HTML: html}).Run(env.Ctx))

	out := env.Out.String()
	assert.Contains(t, out, "Week of 2025-06-02\n")
	assert.NotContains(t, out, "(this week)")
	assert.Contains(t, out, "Water Intake (goal 8)")
	assert.Contains(t, out, "    0    0    5    0    0    0    0")
	assert.NotContains(t, out, "today ")
	assert.Contains(t, out, "Chart written to "+html)

	raw, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Water Intake")
}

func TestWeekCmdCurrentWeek(t *testing.T) {
	env := clitest.LoggedIn(t)
	require.NoError(t, (&WeekCmd{}).Run(env.Ctx))

	out := env.Out.String()
	assert.Contains(t, out, "(this week)")
	assert.Contains(t, out, "today 0/7")
}

func TestGoalsCommands(t *testing.T) {
	env := clitest.LoggedIn(t)

	require.NoError(t, (&GoalsShowCmd{}).Run(env.Ctx))
	assert.Regexp(t, `Water Intake:\s+8\n`, env.Out.String())

	env.Reset()
	require.NoError(t, (&GoalsSetCmd{Sleep: "9"}).Run(env.Ctx))
	out := env.Out.String()
	assert.Contains(t, out, "Goals saved")
	assert.Regexp(t, `Sleep Hours:\s+9\n`, out)
	assert.Regexp(t, `Water Intake:\s+8\n`, out)

	env.Reset()
	assert.Error(t, (&GoalsSetCmd{Water: "0"}).Run(env.Ctx))
	assert.Error(t, (&GoalsSetCmd{Workout: "lots"}).Run(env.Ctx))

	require.NoError(t, (&GoalsSetCmd{}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "Nothing to change")
}
