package gateway

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/week"
)

// Fake is an in-memory Gateway with the server's semantics. It backs tests
// and the offline demo in the TUI.
type Fake struct {
	mu sync.Mutex

	Today  time.Time
	Values map[models.HabitKind]map[string]int
	Goals  models.Goals
	Users  map[string]string

	// Per-operation failures. A non-nil error is returned instead of running
	// the operation.
	FetchWeekErr  error
	MutateErr     error
	FetchGoalsErr error
	SaveGoalsErr  error
	AuthErr       error

	// Calls records operation names in order.
	Calls []string
	// Anchors records the anchor passed to every FetchWeek.
	Anchors []string
}

func NewFake(today time.Time) *Fake {
	return &Fake{
		Today:  week.Date(today),
		Values: map[models.HabitKind]map[string]int{},
		Goals:  models.DefaultGoals(),
		Users:  map[string]string{},
	}
}

func (f *Fake) record(op string) {
	f.Calls = append(f.Calls, op)
}

func (f *Fake) Register(_ context.Context, creds models.Credentials) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("register")
	if f.AuthErr != nil {
		return "", f.AuthErr
	}
	if _, exists := f.Users[creds.Email]; exists {
		return "", &APIError{StatusCode: http.StatusConflict, Message: "email already registered"}
	}
	f.Users[creds.Email] = creds.Password
	return "token-" + creds.Email, nil
}

func (f *Fake) Login(_ context.Context, creds models.Credentials) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("login")
	if f.AuthErr != nil {
		return "", f.AuthErr
	}
	if pw, ok := f.Users[creds.Email]; !ok || pw != creds.Password {
		return "", &APIError{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"}
	}
	return "token-" + creds.Email, nil
}

func (f *Fake) FetchWeek(ctx context.Context, anchor string) (*models.WeeklyData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("fetchWeek")
	f.Anchors = append(f.Anchors, anchor)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.FetchWeekErr != nil {
		return nil, f.FetchWeekErr
	}

	day := f.Today
	if anchor != "" {
		d, err := week.ParseDate(anchor)
		if err != nil {
			return nil, err
		}
		day = d
	}
	monday := week.NormalizeToMonday(day)

	res := models.WeekResponse{WeekStart: week.FormatDate(monday), Data: map[models.HabitKind][]models.HabitEntry{}}
	for _, kind := range models.AllHabitKinds {
		var entries []models.HabitEntry
		for _, iso := range week.Days(monday) {
			if v, ok := f.Values[kind][iso]; ok {
				entries = append(entries, models.HabitEntry{Day: iso, Value: v})
			}
		}
		res.Data[kind] = entries
	}
	return NormalizeWeek(res)
}

func (f *Fake) Mutate(_ context.Context, req models.MutateRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("mutate")
	if f.MutateErr != nil {
		return f.MutateErr
	}
	if !req.Type.Valid() {
		return &APIError{StatusCode: http.StatusBadRequest, Message: "invalid habit type"}
	}

	day := week.FormatDate(f.Today)
	if req.Date != "" {
		day = req.Date
	}
	if f.Values[req.Type] == nil {
		f.Values[req.Type] = map[string]int{}
	}
	cur := f.Values[req.Type][day]
	switch req.Op {
	case models.OpIncrement:
		cur++
	case models.OpDecrement:
		cur--
	case models.OpSet:
		if req.Value != nil {
			cur = *req.Value
		}
	default:
		return &APIError{StatusCode: http.StatusBadRequest, Message: "invalid op"}
	}
	if cur < 0 {
		cur = 0
	}
	f.Values[req.Type][day] = cur
	return nil
}

func (f *Fake) FetchGoals(context.Context) (models.Goals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("fetchGoals")
	if f.FetchGoalsErr != nil {
		return nil, f.FetchGoalsErr
	}
	return f.Goals.Clone(), nil
}

func (f *Fake) SaveGoals(_ context.Context, goals models.Goals) (models.Goals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("saveGoals")
	if f.SaveGoalsErr != nil {
		return nil, f.SaveGoalsErr
	}
	for k, v := range goals {
		if !k.Valid() {
			continue
		}
		if v < 1 {
			return nil, &APIError{StatusCode: http.StatusBadRequest, Message: "goal must be at least 1"}
		}
		f.Goals[k] = v
	}
	return f.Goals.Clone(), nil
}

// Value returns the stored value for kind on day.
func (f *Fake) Value(kind models.HabitKind, day string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Values[kind][day]
}

// CallCount returns how many times op was invoked.
func (f *Fake) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == op {
			n++
		}
	}
	return n
}
