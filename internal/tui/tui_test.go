package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellfit/internal/gateway"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/session"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/utils"
)

// Wednesday 2025-06-04; week starts Monday 2025-06-02.
var wednesday = time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, loggedIn bool) (Model, *gateway.Fake) {
	t.Helper()
	fake := gateway.NewFake(wednesday)
	creds := session.NewMemoryStore()
	if loggedIn {
		if err := creds.Save("token-ada@example.com"); err != nil {
			t.Fatal(err)
		}
	}
	guard := session.NewGuard(fake, creds)
	clock := utils.FixedClock(wednesday)
	store := tracker.New(fake, tracker.WithClock(clock))
	return NewModel(guard, store, WithClock(clock)), fake
}

// run executes cmd and feeds every resulting message back into m, following
// up on whatever the model returns. Spinner ticks are dropped. Commands are
// only run while the dashboard is showing so huh form commands never execute.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = run(t, m, c)
		}
	case authDoneMsg, weekLoadedMsg, mutatedMsg, goalsSavedMsg:
		next, follow := m.Update(msg)
		m = next.(Model)
		if m.screen == screenDashboard {
			m = run(t, m, follow)
		}
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(k)
	m = next.(Model)
	if m.screen != screenDashboard {
		return m
	}
	return run(t, m, cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUnauthenticatedShowsLogin(t *testing.T) {
	m, _ := newTestModel(t, false)
	if m.screen != screenLogin {
		t.Fatalf("expected login screen, got %d", m.screen)
	}
	if !strings.Contains(m.View(), "Email") {
		t.Error("login view should ask for an email")
	}
}

func TestDashboardLoads(t *testing.T) {
	m, fake := newTestModel(t, true)
	fake.Values[models.HabitWater] = map[string]int{"2025-06-04": 3}

	m = run(t, m, m.Init())
	if m.loading {
		t.Fatal("still loading after initial fetch")
	}
	view := m.View()
	for _, want := range []string{"Week of 2025-06-02", "Water Intake", "Today: 3 / 8", "Sleep Hours", "Workout"} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestIncrementAndDecrement(t *testing.T) {
	m, fake := newTestModel(t, true)
	m = run(t, m, m.Init())

	m = press(t, m, runes("+"))
	m = press(t, m, runes("+"))
	if got := fake.Value(models.HabitWater, "2025-06-04"); got != 2 {
		t.Fatalf("server water = %d, want 2", got)
	}
	if !strings.Contains(m.View(), "Today: 2 / 8") {
		t.Error("dashboard should reflect the re-fetched value")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, runes("-"))
	if got := fake.Value(models.HabitSleep, "2025-06-04"); got != 0 {
		t.Errorf("sleep decrement below zero stored %d", got)
	}
}

func TestMutationFailureIsNonBlocking(t *testing.T) {
	m, fake := newTestModel(t, true)
	m = run(t, m, m.Init())

	fake.MutateErr = &gateway.APIError{StatusCode: 500, Message: "database unavailable"}
	m = press(t, m, runes("+"))

	view := m.View()
	if !strings.Contains(view, "Update failed") || !strings.Contains(view, "database unavailable") {
		t.Error("expected mutation error banner")
	}
	if !strings.Contains(view, "Today: 0 / 8") {
		t.Error("dashboard should still show the unchanged week")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "Update failed") {
		t.Error("esc should dismiss the mutation error")
	}
}

func TestFetchFailureIsBlocking(t *testing.T) {
	m, fake := newTestModel(t, true)
	fake.FetchWeekErr = &gateway.APIError{StatusCode: 500, Message: "boom"}
	m = run(t, m, m.Init())

	view := m.View()
	if !strings.Contains(view, "Could not load your week") {
		t.Error("expected blocking fetch error")
	}
	if strings.Contains(view, "Today:") {
		t.Error("habit cards must not render while the fetch error stands")
	}

	fake.FetchWeekErr = nil
	m = press(t, m, runes("r"))
	if !strings.Contains(m.View(), "Today: 0 / 8") {
		t.Error("retry should restore the dashboard")
	}
}

func TestWeekNavigation(t *testing.T) {
	m, _ := newTestModel(t, true)
	m = run(t, m, m.Init())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !strings.Contains(m.View(), "Week of 2025-05-26") {
		t.Error("left should show the previous week")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), "Week of 2025-06-09") {
		t.Error("right should show the next week")
	}
	m = press(t, m, runes("t"))
	if !strings.Contains(m.View(), "(this week)") {
		t.Error("t should return to this week")
	}
}

func TestGoalsSubmission(t *testing.T) {
	m, fake := newTestModel(t, true)
	m = run(t, m, m.Init())

	m = run(t, m, m.saveGoalsCmd(map[string]string{"water": "10", "sleep": "", "workout": "2"}))
	if fake.Goals[models.HabitWater] != 10 || fake.Goals[models.HabitWorkout] != 2 {
		t.Errorf("server goals = %v", fake.Goals)
	}
	if !strings.Contains(m.View(), "Today: 0 / 10") {
		t.Error("dashboard should use the saved goal")
	}

	m = run(t, m, m.saveGoalsCmd(map[string]string{"water": "0"}))
	if fake.Goals[models.HabitWater] != 10 {
		t.Error("a zero goal must never reach the server")
	}
	if !strings.Contains(m.View(), "Goals not saved") {
		t.Error("expected goals error notice")
	}
}

func TestLoginFlow(t *testing.T) {
	m, fake := newTestModel(t, false)
	fake.Users["ada@example.com"] = "hunter22"

	m = run(t, m, m.authCmd(LoginFormModel{Action: actionLogin, Email: "ada@example.com", Password: "wrong"}))
	if m.screen != screenLogin || !strings.Contains(m.View(), session.ErrAuthFailed.Error()) {
		t.Fatal("failed login should stay on the form with the generic error")
	}

	m = run(t, m, m.authCmd(LoginFormModel{Action: actionLogin, Email: "ada@example.com", Password: "hunter22"}))
	if m.screen != screenDashboard {
		t.Fatalf("expected dashboard after login, got %d", m.screen)
	}
	if !strings.Contains(m.View(), "Water Intake") {
		t.Error("dashboard should load after login")
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m, _ := newTestModel(t, true)
	m = run(t, m, m.Init())

	m = press(t, m, runes("o"))
	if m.screen != screenLogin {
		t.Fatalf("expected login screen after logout, got %d", m.screen)
	}
	if m.guard.State() != session.StateUnauthenticated {
		t.Errorf("guard state = %v", m.guard.State())
	}
	if _, ok := m.store.Week(); ok {
		t.Error("held week should be discarded on logout")
	}
}

func TestLogoutDuringUpdateDropsLateResult(t *testing.T) {
	m, fake := newTestModel(t, true)
	m = run(t, m, m.Init())

	next, incCmd := m.Update(runes("+"))
	m = next.(Model)
	m = press(t, m, runes("o"))
	fetches := fake.CallCount("fetchWeek")

	// The increment issued before logout finishes afterwards.
	var late []tea.Msg
	var collect func(tea.Cmd)
	collect = func(c tea.Cmd) {
		if c == nil {
			return
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			for _, inner := range msg {
				collect(inner)
			}
		case mutatedMsg, weekLoadedMsg:
			late = append(late, msg)
		}
	}
	collect(incCmd)
	if len(late) == 0 {
		t.Fatal("expected the increment to report back")
	}
	for _, msg := range late {
		next, _ := m.Update(msg)
		m = next.(Model)
	}

	if m.screen != screenLogin {
		t.Errorf("late result moved the screen to %d", m.screen)
	}
	if got := fake.CallCount("fetchWeek"); got != fetches {
		t.Errorf("fetchWeek called %d more times after logout", got-fetches)
	}
	if st := m.store.Status(); st.FetchErr != nil || st.MutationErr != nil {
		t.Errorf("logged-out store picked up errors: %+v", st)
	}
}
