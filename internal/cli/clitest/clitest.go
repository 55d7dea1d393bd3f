// Package clitest runs command tests against a real API server backed by a
// temporary sqlite database.
package clitest

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/wellfit/internal/auth"
	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/constants"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/server"
	"github.com/julianstephens/wellfit/internal/service"
	"github.com/julianstephens/wellfit/internal/session"
	"github.com/julianstephens/wellfit/internal/storage/sqlite"
)

const (
	Email    = "ada@example.com"
	Password = "hunter22"
)

// Env is a command context wired to a throwaway server.
type Env struct {
	Ctx   *cli.Context
	Out   *bytes.Buffer
	Creds *session.MemoryStore
	URL   string
}

// New starts a server and returns a context pointed at it. Both sides use
// the local wall clock.
func New(t *testing.T) *Env {
	t.Helper()
	t.Setenv(constants.EnvTimezone, "Local")

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "wellfit.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := service.New(store, auth.NewTokens("test-secret", time.Hour))
	srv := httptest.NewServer(server.New(svc, server.Options{}).Handler())
	t.Cleanup(srv.Close)

	return NewContext(srv.URL)
}

// NewContext returns a fresh context for url, as a new process would see it.
func NewContext(url string) *Env {
	out := &bytes.Buffer{}
	creds := session.NewMemoryStore()
	return &Env{
		Ctx:   &cli.Context{APIURL: url, Out: out, Creds: creds},
		Out:   out,
		Creds: creds,
		URL:   url,
	}
}

// LoggedIn registers the default account and returns a context holding its session.
func LoggedIn(t *testing.T) *Env {
	t.Helper()
	env := New(t)
	guard, err := env.Ctx.Guard()
	if err != nil {
		t.Fatalf("failed to build guard: %v", err)
	}
	if err := guard.Register(context.Background(), models.Credentials{Email: Email, Password: Password}); err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	return env
}

// Reset clears captured output.
func (e *Env) Reset() {
	e.Out.Reset()
}
