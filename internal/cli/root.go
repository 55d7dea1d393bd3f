package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/wellfit/internal/config"
	"github.com/julianstephens/wellfit/internal/gateway"
	"github.com/julianstephens/wellfit/internal/session"
	"github.com/julianstephens/wellfit/internal/storage"
	"github.com/julianstephens/wellfit/internal/storage/postgres"
	"github.com/julianstephens/wellfit/internal/storage/sqlite"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/utils"
)

// ErrNotLoggedIn is returned by commands that need a session when none is stored.
var ErrNotLoggedIn = errors.New("not logged in, run `wellfit login` first")

// Context is shared by every command. Client pieces are built on first use
// so server commands never touch the keyring.
type Context struct {
	ConfigDir string
	APIURL    string // overrides WELLFIT_API_URL when set
	Out       io.Writer
	Creds     session.CredentialStore

	client  *config.ClientConfig
	gateway *gateway.Client
	guard   *session.Guard
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) ClientConfig() (*config.ClientConfig, error) {
	if c.client != nil {
		return c.client, nil
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if c.APIURL != "" {
		cfg.APIURL = strings.TrimRight(c.APIURL, "/")
	}
	c.client = cfg
	return cfg, nil
}

// Clock returns "now" in the configured client timezone.
func (c *Context) Clock() (utils.Clock, error) {
	cfg, err := c.ClientConfig()
	if err != nil {
		return nil, err
	}
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return utils.ClockIn(loc), nil
}

// Gateway returns the API client. Its bearer token always comes from the guard.
func (c *Context) Gateway() (*gateway.Client, error) {
	if c.gateway != nil {
		return c.gateway, nil
	}
	cfg, err := c.ClientConfig()
	if err != nil {
		return nil, err
	}
	httpClient := gateway.NewHTTPClient(cfg.APIURL, cfg.HTTPTimeout, nil)
	c.gateway = gateway.NewClient(httpClient)
	c.guard = session.NewGuard(c.gateway, c.Creds)
	c.guard.Resolve()
	httpClient.Tokens = c.guard
	return c.gateway, nil
}

func (c *Context) Guard() (*session.Guard, error) {
	if _, err := c.Gateway(); err != nil {
		return nil, err
	}
	return c.guard, nil
}

// RequireSession returns the guard when a credential is held.
func (c *Context) RequireSession() (*session.Guard, error) {
	guard, err := c.Guard()
	if err != nil {
		return nil, err
	}
	if guard.State() != session.StateAuthenticated {
		return nil, ErrNotLoggedIn
	}
	return guard, nil
}

// Tracker builds a habit store for an authenticated session.
func (c *Context) Tracker() (*tracker.Store, error) {
	if _, err := c.RequireSession(); err != nil {
		return nil, err
	}
	clock, err := c.Clock()
	if err != nil {
		return nil, err
	}
	return tracker.New(c.gateway, tracker.WithClock(clock)), nil
}

// OpenStore picks the storage backend from the database setting: a
// PostgreSQL URL or DSN selects postgres, anything else is a sqlite path.
func OpenStore(database string) (storage.Provider, error) {
	if postgres.IsConnString(database) || strings.Contains(database, "host=") {
		if err := postgres.ValidateConnString(database); err != nil {
			return nil, err
		}
		return postgres.New(database), nil
	}
	path, err := config.ExpandHome(database)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// InitStore opens and migrates the configured store.
func InitStore(ctx context.Context, database string) (storage.Provider, error) {
	store, err := OpenStore(database)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
