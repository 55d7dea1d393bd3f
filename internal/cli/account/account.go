package account

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/errors"
	"github.com/julianstephens/wellfit/internal/keyring"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/pidfile"
	"github.com/julianstephens/wellfit/internal/session"
	"github.com/julianstephens/wellfit/internal/validation"
)

// CredentialFlags are shared by login and register. Missing values are
// prompted for.
type CredentialFlags struct {
	Email    string `help:"Account email." short:"e"`
	Password string `help:"Account password (prompted when omitted)." env:"WELLFIT_PASSWORD"`
}

func (f *CredentialFlags) resolve() (models.Credentials, error) {
	creds := models.Credentials{Email: strings.TrimSpace(f.Email), Password: f.Password}
	if creds.Email == "" || creds.Password == "" {
		var fields []huh.Field
		if creds.Email == "" {
			fields = append(fields, huh.NewInput().Title("Email").Value(&creds.Email))
		}
		if creds.Password == "" {
			fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&creds.Password))
		}
		if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeDracula()).Run(); err != nil {
			return creds, err
		}
	}
	if res := validation.ValidateCredentials(creds); res.HasIssues() {
		return creds, res.Err()
	}
	return creds, nil
}

type LoginCmd struct {
	CredentialFlags `embed:""`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	creds, err := c.resolve()
	if err != nil {
		return err
	}
	guard, err := ctx.Guard()
	if err != nil {
		return err
	}
	if err := guard.Login(context.Background(), creds); err != nil {
		return err
	}
	ctx.Printf("Logged in as %s\n", strings.ToLower(creds.Email))
	return nil
}

type RegisterCmd struct {
	CredentialFlags `embed:""`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	creds, err := c.resolve()
	if err != nil {
		return err
	}
	guard, err := ctx.Guard()
	if err != nil {
		return err
	}
	if err := guard.Register(context.Background(), creds); err != nil {
		return err
	}
	ctx.Printf("Account created for %s\n", strings.ToLower(creds.Email))
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	guard, err := ctx.Guard()
	if err != nil {
		return err
	}
	if err := guard.Logout(); err != nil {
		return err
	}
	ctx.Printf("Logged out\n")
	return nil
}

type SessionCmd struct {
	Status SessionStatusCmd `cmd:"" help:"Show whether a session is stored and the server is reachable." default:"1"`
}

// exitNotLoggedIn lets scripts tell a missing session from other failures.
const exitNotLoggedIn = 2

type SessionStatusCmd struct{}

func (c *SessionStatusCmd) Run(ctx *cli.Context) error {
	cfg, err := ctx.ClientConfig()
	if err != nil {
		return err
	}
	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}
	guard, err := ctx.Guard()
	if err != nil {
		return err
	}

	ctx.Printf("API:     %s\n", cfg.APIURL)
	if err := gw.Health(context.Background()); err != nil {
		ctx.Printf("Server:  unreachable (%v)\n", err)
	} else {
		ctx.Printf("Server:  ok\n")
	}
	if ctx.ConfigDir != "" {
		if e, err := pidfile.Running(pidfile.Path(ctx.ConfigDir)); err == nil {
			ctx.Printf("Local:   server running (pid %d, %s)\n", e.PID, e.Addr)
		}
	}
	if _, isKeyring := ctx.Creds.(*keyring.TokenStore); isKeyring {
		if keyring.IsAvailable() {
			ctx.Printf("Keyring: available\n")
		} else {
			ctx.Printf("Keyring: unavailable, sessions will not persist\n")
		}
	}
	ctx.Printf("Session: %s\n", guard.State())
	if guard.State() != session.StateAuthenticated {
		return errors.WithExitCode(cli.ErrNotLoggedIn, exitNotLoggedIn)
	}
	return nil
}
