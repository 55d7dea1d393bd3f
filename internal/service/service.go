// Package service implements the server-side habit operations on top of a
// storage.Provider.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/wellfit/internal/auth"
	"github.com/julianstephens/wellfit/internal/logger"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/storage"
	"github.com/julianstephens/wellfit/internal/utils"
	"github.com/julianstephens/wellfit/internal/week"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// ClampPolicy bounds stored day values. A zero Ceiling means no upper bound.
type ClampPolicy struct {
	Floor   int
	Ceiling int
}

// DefaultClampPolicy floors at zero with no ceiling.
func DefaultClampPolicy() ClampPolicy {
	return ClampPolicy{Floor: 0}
}

func (p ClampPolicy) Apply(v int) int {
	if v < p.Floor {
		v = p.Floor
	}
	if p.Ceiling > 0 && v > p.Ceiling {
		v = p.Ceiling
	}
	return v
}

// HabitService owns accounts, week views, updates and goals.
type HabitService struct {
	store  storage.Provider
	tokens *auth.Tokens
	clamp  ClampPolicy
	clock  utils.Clock
}

type Option func(*HabitService)

func WithClampPolicy(p ClampPolicy) Option {
	return func(s *HabitService) { s.clamp = p }
}

func WithClock(c utils.Clock) Option {
	return func(s *HabitService) { s.clock = c }
}

func New(store storage.Provider, tokens *auth.Tokens, opts ...Option) *HabitService {
	s := &HabitService{
		store:  store,
		tokens: tokens,
		clamp:  DefaultClampPolicy(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with its habits and default goals and returns a token.
func (s *HabitService) Register(ctx context.Context, creds models.Credentials) (string, error) {
	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return "", fmt.Errorf("%w: email and password required", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	if err := s.store.EnsureHabits(ctx, user.ID); err != nil {
		return "", err
	}
	if err := s.store.EnsureGoals(ctx, user.ID, models.DefaultGoals()); err != nil {
		return "", err
	}

	logger.Info("user registered", "user", user.ID)
	return s.tokens.Issue(user.ID)
}

func (s *HabitService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	email := normalizeEmail(creds.Email)
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := auth.CheckPassword(user.PasswordHash, creds.Password); err != nil {
		return "", ErrInvalidCredentials
	}
	if err := s.store.EnsureGoals(ctx, user.ID, models.DefaultGoals()); err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

// Authenticate resolves a bearer token to a user id.
func (s *HabitService) Authenticate(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", auth.ErrInvalidToken
		}
		return "", err
	}
	return userID, nil
}

// today is the server's calendar date as a date-only value.
func (s *HabitService) today() time.Time {
	return week.Date(s.clock())
}

// resolveDay parses an optional YYYY-MM-DD, defaulting to today.
func (s *HabitService) resolveDay(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return s.today(), nil
	}
	d, err := week.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return d, nil
}

// Week returns the Monday-aligned week containing date.
func (s *HabitService) Week(ctx context.Context, userID, date string) (models.WeekResponse, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return models.WeekResponse{}, err
	}
	if err := s.store.EnsureHabits(ctx, userID); err != nil {
		return models.WeekResponse{}, err
	}
	monday := week.NormalizeToMonday(day)
	return s.weekFor(ctx, userID, monday, models.AllHabitKinds)
}

func (s *HabitService) weekFor(ctx context.Context, userID string, monday time.Time, kinds []models.HabitKind) (models.WeekResponse, error) {
	days := week.Days(monday)
	entries, err := s.store.GetEntries(ctx, userID, days[0], days[len(days)-1])
	if err != nil {
		return models.WeekResponse{}, err
	}

	byKind := map[models.HabitKind][]models.HabitEntry{}
	for _, e := range entries {
		byKind[e.Kind] = append(byKind[e.Kind], models.HabitEntry{Day: e.Day, Value: e.Value})
	}

	res := models.WeekResponse{
		WeekStart: week.FormatDate(monday),
		Data:      make(map[models.HabitKind][]models.HabitEntry, len(kinds)),
	}
	for _, kind := range kinds {
		series := models.NormalizeSeries(monday, byKind[kind])
		res.Data[kind] = series[:]
	}
	return res, nil
}

// Update applies one mutation and returns the new value with its week.
func (s *HabitService) Update(ctx context.Context, userID string, req models.MutateRequest) (models.MutateResponse, error) {
	if !req.Type.Valid() {
		return models.MutateResponse{}, fmt.Errorf("%w: invalid habit type", ErrInvalidInput)
	}

	var fn storage.UpdateFunc
	switch req.Op {
	case models.OpIncrement:
		fn = func(v int) int { return s.clamp.Apply(v + 1) }
	case models.OpDecrement:
		fn = func(v int) int { return s.clamp.Apply(v - 1) }
	case models.OpSet:
		target := 0
		if req.Value != nil {
			target = *req.Value
		}
		fn = func(int) int { return s.clamp.Apply(target) }
	default:
		return models.MutateResponse{}, fmt.Errorf("%w: invalid op", ErrInvalidInput)
	}

	day, err := s.resolveDay(req.Date)
	if err != nil {
		return models.MutateResponse{}, err
	}
	entry, err := s.store.UpdateEntry(ctx, userID, req.Type, week.FormatDate(day), fn)
	if err != nil {
		return models.MutateResponse{}, err
	}

	monday := week.NormalizeToMonday(day)
	wk, err := s.weekFor(ctx, userID, monday, []models.HabitKind{req.Type})
	if err != nil {
		return models.MutateResponse{}, err
	}

	logger.Debug("habit updated", "user", userID, "type", req.Type, "op", req.Op, "day", entry.Day, "value", entry.Value)
	return models.MutateResponse{
		OK:        true,
		Day:       entry.Day,
		Type:      req.Type,
		Value:     entry.Value,
		WeekStart: wk.WeekStart,
		Weekly:    wk.Data[req.Type],
	}, nil
}

// Goals returns the user's goals, creating defaults for missing kinds.
func (s *HabitService) Goals(ctx context.Context, userID string) (models.Goals, error) {
	if err := s.store.EnsureGoals(ctx, userID, models.DefaultGoals()); err != nil {
		return nil, err
	}
	return s.store.GetGoals(ctx, userID)
}

// SaveGoals stores the known kinds in goals and returns the full set.
// Unknown kinds are ignored; a value below 1 rejects the whole request.
func (s *HabitService) SaveGoals(ctx context.Context, userID string, goals models.Goals) (models.Goals, error) {
	accepted := models.Goals{}
	for kind, v := range goals {
		if !kind.Valid() {
			continue
		}
		if v < 1 {
			return nil, fmt.Errorf("%w: %s goal must be at least 1", ErrInvalidInput, kind)
		}
		accepted[kind] = v
	}
	if err := s.store.SetGoals(ctx, userID, accepted); err != nil {
		return nil, err
	}
	return s.Goals(ctx, userID)
}
