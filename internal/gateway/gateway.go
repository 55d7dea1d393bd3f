// Package gateway is the HTTP client for the habit API. The remote server is
// the only source of truth; nothing fetched here is cached.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/week"
)

const (
	pathRegister = "/auth/register"
	pathLogin    = "/auth/login"
	pathWeekly   = "/habits/weekly"
	pathUpdate   = "/habits/update"
	pathGoals    = "/goals"
	pathHealth   = "/healthz"
)

// Gateway is every remote operation the client performs.
type Gateway interface {
	Register(ctx context.Context, creds models.Credentials) (string, error)
	Login(ctx context.Context, creds models.Credentials) (string, error)
	FetchWeek(ctx context.Context, anchor string) (*models.WeeklyData, error)
	Mutate(ctx context.Context, req models.MutateRequest) error
	FetchGoals(ctx context.Context) (models.Goals, error)
	SaveGoals(ctx context.Context, goals models.Goals) (models.Goals, error)
}

// Client talks to the habit API over HTTP.
type Client struct {
	*HTTPClient
}

func NewClient(httpClient *HTTPClient) *Client {
	return &Client{HTTPClient: httpClient}
}

func (c *Client) Register(ctx context.Context, creds models.Credentials) (string, error) {
	return c.authenticate(ctx, pathRegister, creds)
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return c.authenticate(ctx, pathLogin, creds)
}

func (c *Client) authenticate(ctx context.Context, endpoint string, creds models.Credentials) (string, error) {
	var res models.TokenResponse
	if err := c.Request(ctx, http.MethodPost, endpoint, nil, creds, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "server returned an empty token"}
	}
	return res.Token, nil
}

// FetchWeek loads the week containing anchor (YYYY-MM-DD). An empty anchor
// asks the server for its current week. The result always has seven entries
// per habit.
func (c *Client) FetchWeek(ctx context.Context, anchor string) (*models.WeeklyData, error) {
	var query url.Values
	if anchor != "" {
		if _, err := week.ParseDate(anchor); err != nil {
			return nil, err
		}
		query = url.Values{"date": {anchor}}
	}

	var res models.WeekResponse
	if err := c.Request(ctx, http.MethodGet, pathWeekly, query, nil, &res); err != nil {
		return nil, err
	}
	return NormalizeWeek(res)
}

// NormalizeWeek converts a wire response into WeeklyData aligned to Monday.
func NormalizeWeek(res models.WeekResponse) (*models.WeeklyData, error) {
	start, err := week.ParseDate(res.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("server returned bad weekStart: %w", err)
	}
	start = week.NormalizeToMonday(start)

	data := &models.WeeklyData{
		WeekStart: week.FormatDate(start),
		Series:    make(map[models.HabitKind]models.WeeklySeries, len(models.AllHabitKinds)),
	}
	for _, kind := range models.AllHabitKinds {
		data.Series[kind] = models.NormalizeSeries(start, res.Data[kind])
	}
	return data, nil
}

// Mutate applies one change to a habit. Only the status code matters; the
// caller re-fetches to observe the result.
func (c *Client) Mutate(ctx context.Context, req models.MutateRequest) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownHabitKind, req.Type)
	}
	switch req.Op {
	case models.OpIncrement, models.OpDecrement:
	case models.OpSet:
		if req.Value == nil {
			return fmt.Errorf("%w: set requires a value", models.ErrUnknownOp)
		}
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownOp, req.Op)
	}
	if req.Date != "" {
		if _, err := week.ParseDate(req.Date); err != nil {
			return err
		}
	}
	return c.Request(ctx, http.MethodPost, pathUpdate, nil, req, nil)
}

// FetchGoals returns the goals the server holds. The map may be partial and
// may carry kinds this client does not know.
func (c *Client) FetchGoals(ctx context.Context) (models.Goals, error) {
	var raw map[string]int
	if err := c.Request(ctx, http.MethodGet, pathGoals, nil, nil, &raw); err != nil {
		return nil, err
	}
	return goalsFromWire(raw), nil
}

func (c *Client) SaveGoals(ctx context.Context, goals models.Goals) (models.Goals, error) {
	var raw map[string]int
	if err := c.Request(ctx, http.MethodPost, pathGoals, nil, models.SaveGoalsRequest{Goals: goals}, &raw); err != nil {
		return nil, err
	}
	return goalsFromWire(raw), nil
}

// Health pings the server.
func (c *Client) Health(ctx context.Context) error {
	var res models.HealthResponse
	if err := c.Request(ctx, http.MethodGet, pathHealth, nil, nil, &res); err != nil {
		return err
	}
	if res.Status != "ok" {
		return fmt.Errorf("server reported status %q", res.Status)
	}
	return nil
}

func goalsFromWire(raw map[string]int) models.Goals {
	out := make(models.Goals, len(raw))
	for k, v := range raw {
		out[models.HabitKind(strings.ToLower(k))] = v
	}
	return out
}
