package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/cli/account"
	"github.com/julianstephens/wellfit/internal/cli/habits"
	"github.com/julianstephens/wellfit/internal/cli/system"
	"github.com/julianstephens/wellfit/internal/config"
	"github.com/julianstephens/wellfit/internal/constants"
	"github.com/julianstephens/wellfit/internal/errors"
	"github.com/julianstephens/wellfit/internal/keyring"
	"github.com/julianstephens/wellfit/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Directory for logs and the default database." type:"path" default:"~/.config/wellfit"`
	APIURL    string `help:"API base URL (overrides WELLFIT_API_URL)." name:"api-url"`
	Debug     bool   `help:"Log debug output to stderr."`
	LogJSON   bool   `help:"Write logs as JSON." name:"log-json"`

	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Register account.RegisterCmd `cmd:"" help:"Create an account and log in."`
	Login    account.LoginCmd    `cmd:"" help:"Log in and store the session in the OS keyring."`
	Logout   account.LogoutCmd   `cmd:"" help:"Forget the stored session."`
	Session  account.SessionCmd  `cmd:"" help:"Inspect the stored session."`
	Week     habits.WeekCmd      `cmd:"" help:"Show a week of habits."`
	Inc      habits.IncCmd       `cmd:"" help:"Increment a habit for today."`
	Dec      habits.DecCmd       `cmd:"" help:"Decrement a habit for today."`
	Set      habits.SetCmd       `cmd:"" help:"Set a habit's value for a day."`
	Goals    habits.GoalsCmd     `cmd:"" help:"Show or change daily goals."`
	Serve    system.ServeCmd     `cmd:"" help:"Run the habit API server."`
	Migrate  system.MigrateCmd   `cmd:"" help:"Apply database migrations."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly water, sleep and workout tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	serving := ctx.Command() == "serve"
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: CLI.ConfigDir,
		Console:   serving,
		JSON:      CLI.LogJSON,
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	config.LoadDotEnv()

	appCtx := &cli.Context{
		ConfigDir: CLI.ConfigDir,
		APIURL:    CLI.APIURL,
		Out:       os.Stdout,
		Creds:     keyring.NewTokenStore(constants.DefaultKeyringUser),
	}

	errors.Fatal(ctx.Run(appCtx))
}
