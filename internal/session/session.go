// Package session owns the authentication state of one client.
//
// State moves Unknown -> Unauthenticated <-> Authenticated. Transitions are
// the pure functions Admit and Revoke; Guard is the single owner that applies
// them and persists the credential.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/julianstephens/wellfit/internal/constants"
	"github.com/julianstephens/wellfit/internal/logger"
	"github.com/julianstephens/wellfit/internal/models"
)

var (
	// ErrAuthFailed is the only error login and register surface to users.
	ErrAuthFailed = errors.New(constants.AuthFailedMessage)
	// ErrEmptyCredential is returned by Admit for a blank token.
	ErrEmptyCredential = errors.New("credential is empty")
)

type State int

const (
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session is the held credential. An empty Token means no session.
type Session struct {
	Token string
}

func (s Session) Present() bool {
	return s.Token != ""
}

// Admit returns the session for credential.
func Admit(credential string) (Session, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return Session{}, ErrEmptyCredential
	}
	return Session{Token: credential}, nil
}

// Revoke returns the empty session.
func Revoke() Session {
	return Session{}
}

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, creds models.Credentials) (string, error)
}

// CredentialStore persists the token between runs.
type CredentialStore interface {
	Load() (token string, ok bool, err error)
	Save(token string) error
	Clear() error
}

// Guard holds the current session and state.
type Guard struct {
	mu      sync.RWMutex
	auth    Authenticator
	store   CredentialStore
	session Session
	state   State
}

func NewGuard(auth Authenticator, store CredentialStore) *Guard {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Guard{auth: auth, store: store, state: StateUnknown}
}

// Resolve reads the persisted credential and leaves Unknown. It touches only
// local storage. A store error resolves to Unauthenticated.
func (g *Guard) Resolve() State {
	token, ok, err := g.store.Load()
	if err != nil {
		logger.Warn("failed to read stored credential", "error", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err == nil && ok {
		if s, admitErr := Admit(token); admitErr == nil {
			g.session = s
			g.state = StateAuthenticated
			return g.state
		}
	}
	g.session = Revoke()
	g.state = StateUnauthenticated
	return g.state
}

func (g *Guard) Login(ctx context.Context, creds models.Credentials) error {
	return g.authenticate(ctx, "login", creds, g.auth.Login)
}

func (g *Guard) Register(ctx context.Context, creds models.Credentials) error {
	return g.authenticate(ctx, "register", creds, g.auth.Register)
}

func (g *Guard) authenticate(ctx context.Context, op string, creds models.Credentials,
	call func(context.Context, models.Credentials) (string, error)) error {
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))

	token, err := call(ctx, creds)
	if err != nil {
		logger.Warn("authentication failed", "op", op, "email", creds.Email, "error", err)
		return ErrAuthFailed
	}
	s, err := Admit(token)
	if err != nil {
		logger.Warn("authentication returned no credential", "op", op, "email", creds.Email)
		return ErrAuthFailed
	}

	if err := g.store.Save(s.Token); err != nil {
		// The session still works for this run; it just won't survive a restart.
		logger.Warn("failed to persist credential", "error", err)
	}

	g.mu.Lock()
	g.session = s
	g.state = StateAuthenticated
	g.mu.Unlock()

	logger.Info("session admitted", "op", op, "email", creds.Email)
	return nil
}

// Logout revokes the session and deletes the stored credential.
func (g *Guard) Logout() error {
	g.mu.Lock()
	g.session = Revoke()
	g.state = StateUnauthenticated
	g.mu.Unlock()

	if err := g.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear stored credential: %w", err)
	}
	return nil
}

func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Guard) Session() Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// Token returns the current bearer token, or "" when unauthenticated.
func (g *Guard) Token() string {
	return g.Session().Token
}

// MemoryStore is a CredentialStore that forgets everything on exit.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != "", nil
}

func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
