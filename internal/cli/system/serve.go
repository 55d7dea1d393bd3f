package system

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/wellfit/internal/auth"
	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/config"
	"github.com/julianstephens/wellfit/internal/constants"
	"github.com/julianstephens/wellfit/internal/logger"
	"github.com/julianstephens/wellfit/internal/pidfile"
	"github.com/julianstephens/wellfit/internal/server"
	"github.com/julianstephens/wellfit/internal/service"
	"github.com/julianstephens/wellfit/internal/utils"
)

type ServeCmd struct {
	Addr     string `help:"Listen address (overrides WELLFIT_ADDR)."`
	Database string `help:"SQLite path or PostgreSQL connection string (overrides WELLFIT_DATABASE)."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	cfg, err := config.LoadServer(ctx.ConfigDir)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	if c.Database != "" {
		cfg.Database = c.Database
	}
	if cfg.JWTSecret == constants.DefaultJWTSecret {
		logger.Warn("using the development JWT secret; set " + constants.EnvJWTSecret + " before deploying")
	}

	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return err
	}

	release, err := pidfile.Acquire(pidfile.Path(ctx.ConfigDir), cfg.Addr)
	if err != nil {
		return err
	}
	defer release()

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := cli.InitStore(runCtx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("storage ready", "driver", store.Driver())

	svc := service.New(store, auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		service.WithClampPolicy(service.ClampPolicy{Floor: cfg.ValueFloor, Ceiling: cfg.ValueCeiling}),
		service.WithClock(utils.ClockIn(loc)),
	)
	srv := server.New(svc, server.Options{
		Addr:           cfg.Addr,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	return srv.Run(runCtx)
}
