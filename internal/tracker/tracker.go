// Package tracker holds the client's view of one week of habits and the
// user's goals. The remote server stays the source of truth: every
// successful mutation is followed by a fresh fetch of the displayed week.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/wellfit/internal/gateway"
	"github.com/julianstephens/wellfit/internal/logger"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/utils"
	"github.com/julianstephens/wellfit/internal/validation"
	"github.com/julianstephens/wellfit/internal/week"
)

var (
	// ErrSuperseded is returned by a LoadWeek whose result was discarded
	// because a newer load started while it was in flight.
	ErrSuperseded = errors.New("week load superseded by a newer request")
	// ErrSessionEnded is returned by a Mutate whose store was Reset while the
	// request was in flight.
	ErrSessionEnded = errors.New("session ended during update")
	// ErrInvalidIntent is returned for anything other than Increment or Decrement.
	ErrInvalidIntent = errors.New("invalid mutation intent")
)

// Intent is the change a user asks for on today's value.
type Intent int

const (
	Increment Intent = iota + 1
	Decrement
)

func (i Intent) op() (models.MutationOp, error) {
	switch i {
	case Increment:
		return models.OpIncrement, nil
	case Decrement:
		return models.OpDecrement, nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidIntent, i)
}

func (i Intent) String() string {
	switch i {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	}
	return "invalid"
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	return [...]string{"idle", "loading", "ready", "failed"}[p]
}

// Status reports load state and the two error channels. FetchErr blocks the
// dashboard; MutationErr is shown alongside it.
type Status struct {
	Phase       Phase
	FetchErr    error
	MutationErr error
}

// HabitView is everything a renderer needs for one habit card.
type HabitView struct {
	Kind     models.HabitKind
	Series   models.WeeklySeries
	Today    int
	Goal     int
	Progress float64
}

// Store is the aggregate of WeeklyData and Goals for one session.
//
// Network calls run without the lock held. Rapid repeated mutations are not
// de-duplicated; each one triggers its own re-fetch and the newest fetch wins.
type Store struct {
	gw    gateway.Gateway
	clock utils.Clock

	mu          sync.Mutex
	data        *models.WeeklyData
	goals       models.Goals
	phase       Phase
	fetchErr    error
	mutationErr error
	gen         uint64
	epoch       uint64 // bumped by Reset
	cancel      context.CancelFunc
}

type Option func(*Store)

// WithClock overrides the source of "today".
func WithClock(c utils.Clock) Option {
	return func(s *Store) { s.clock = c }
}

func New(gw gateway.Gateway, opts ...Option) *Store {
	s := &Store{
		gw:    gw,
		clock: time.Now,
		goals: models.DefaultGoals(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadWeek fetches the week containing anchor (YYYY-MM-DD). An empty anchor
// loads the server's current week. On failure the previous data is kept but
// is not displayable until a later load succeeds.
func (s *Store) LoadWeek(ctx context.Context, anchor string) (*models.WeeklyData, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.phase = PhaseLoading
	s.mu.Unlock()

	data, err := s.gw.FetchWeek(loadCtx, anchor)

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel()
	if gen != s.gen {
		logger.Debug("discarding superseded week load", "anchor", anchor)
		return nil, ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		s.fetchErr = err
		s.phase = PhaseFailed
		logger.Error("failed to load week", "anchor", anchor, "error", err)
		return nil, fmt.Errorf("load week: %w", err)
	}

	s.data = data
	s.fetchErr = nil
	s.phase = PhaseReady
	logger.Debug("week loaded", "weekStart", data.WeekStart)
	return cloneWeek(data), nil
}

// LoadCurrentWeek loads the server's current week.
func (s *Store) LoadCurrentWeek(ctx context.Context) (*models.WeeklyData, error) {
	return s.LoadWeek(ctx, "")
}

// Navigate loads the week before or after the displayed one. With nothing
// displayed yet it moves relative to today's week.
func (s *Store) Navigate(ctx context.Context, dir week.Direction) (*models.WeeklyData, error) {
	target, err := week.ShiftWeek(s.Anchor(), dir)
	if err != nil {
		return nil, err
	}
	return s.LoadWeek(ctx, target)
}

// Anchor is the Monday of the displayed week, or of today's week when
// nothing has loaded yet.
func (s *Store) Anchor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anchorLocked()
}

func (s *Store) anchorLocked() string {
	if s.data != nil {
		return s.data.WeekStart
	}
	return week.Start(s.clock())
}

// LoadGoals fetches goals and merges them onto the defaults.
func (s *Store) LoadGoals(ctx context.Context) (models.Goals, error) {
	goals, err := s.gw.FetchGoals(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fetchErr = err
		s.phase = PhaseFailed
		logger.Error("failed to load goals", "error", err)
		return nil, fmt.Errorf("load goals: %w", err)
	}
	s.goals = models.MergeGoals(models.DefaultGoals(), goals)
	return s.goals.Clone(), nil
}

// Load fetches goals and then the given week.
func (s *Store) Load(ctx context.Context, anchor string) error {
	if _, err := s.LoadGoals(ctx); err != nil {
		return err
	}
	_, err := s.LoadWeek(ctx, anchor)
	return err
}

// Mutate applies intent to today's value for kind, then re-fetches the
// displayed week. A failed mutation leaves held data untouched and is
// recorded as a non-blocking error.
func (s *Store) Mutate(ctx context.Context, kind models.HabitKind, intent Intent) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownHabitKind, kind)
	}
	op, err := intent.op()
	if err != nil {
		return err
	}

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	err = s.gw.Mutate(ctx, models.MutateRequest{Type: kind, Op: op})

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		logger.Debug("dropping update result after reset", "kind", kind)
		return ErrSessionEnded
	}
	if err != nil {
		s.mutationErr = err
		s.mu.Unlock()
		logger.Warn("habit update failed", "kind", kind, "intent", intent, "error", err)
		return fmt.Errorf("update %s: %w", kind, err)
	}
	s.mutationErr = nil
	anchor := s.anchorLocked()
	s.mu.Unlock()

	if _, err := s.LoadWeek(ctx, anchor); err != nil && !errors.Is(err, ErrSuperseded) {
		return err
	}
	return nil
}

// SaveGoals validates goals and sends them. Invalid input never reaches the
// network. On failure the held goals are unchanged.
func (s *Store) SaveGoals(ctx context.Context, goals models.Goals) (models.Goals, error) {
	if res := validation.ValidateGoals(goals); res.HasIssues() {
		return nil, res.Err()
	}

	accepted, err := s.gw.SaveGoals(ctx, goals)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.mutationErr = err
		logger.Warn("saving goals failed", "error", err)
		return nil, fmt.Errorf("save goals: %w", err)
	}
	s.mutationErr = nil
	s.goals = models.MergeGoals(s.goals, goals)
	if len(accepted) > 0 {
		s.goals = models.MergeGoals(s.goals, accepted)
	}
	return s.goals.Clone(), nil
}

// DayIndexToday is the weekday index of the current local date.
func (s *Store) DayIndexToday() int {
	return week.DayIndex(s.clock())
}

// Week returns a copy of the held week. ok is false when nothing is
// displayable: nothing has loaded yet or the last fetch failed.
func (s *Store) Week() (data *models.WeeklyData, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil || s.fetchErr != nil {
		return nil, false
	}
	return cloneWeek(s.data), true
}

func (s *Store) Goals() models.Goals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.Clone()
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Phase: s.phase, FetchErr: s.fetchErr, MutationErr: s.mutationErr}
}

// ClearMutationError dismisses the non-blocking error.
func (s *Store) ClearMutationError() {
	s.mu.Lock()
	s.mutationErr = nil
	s.mu.Unlock()
}

// View builds the card for kind from the held week. Today is the value at
// today's weekday index within the displayed week.
func (s *Store) View(kind models.HabitKind) HabitView {
	idx := s.DayIndexToday()

	s.mu.Lock()
	defer s.mu.Unlock()
	v := HabitView{Kind: kind, Goal: s.goals.Get(kind)}
	if s.data != nil {
		v.Series = s.data.SeriesFor(kind)
	} else {
		v.Series = models.EmptySeries(week.NormalizeToMonday(s.clock()))
	}
	v.Today = v.Series[idx].Value
	v.Progress = Progress(v.Today, v.Goal)
	return v
}

// Views returns a card for every habit in display order.
func (s *Store) Views() []HabitView {
	out := make([]HabitView, 0, len(models.AllHabitKinds))
	for _, kind := range models.AllHabitKinds {
		out = append(out, s.View(kind))
	}
	return out
}

// Progress is value/goal capped at 1.
func Progress(value, goal int) float64 {
	if goal < 1 || value <= 0 {
		return 0
	}
	p := float64(value) / float64(goal)
	if p > 1 {
		return 1
	}
	return p
}

// Reset discards all held state. Called when the session ends.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.epoch++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.data = nil
	s.goals = models.DefaultGoals()
	s.phase = PhaseIdle
	s.fetchErr = nil
	s.mutationErr = nil
}

func cloneWeek(d *models.WeeklyData) *models.WeeklyData {
	out := &models.WeeklyData{
		WeekStart: d.WeekStart,
		Series:    make(map[models.HabitKind]models.WeeklySeries, len(d.Series)),
	}
	for k, v := range d.Series {
		out.Series[k] = v
	}
	return out
}
