package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/wellfit/internal/cli"
	"github.com/julianstephens/wellfit/internal/config"
)

type schemaVersioner interface {
	SchemaVersion(ctx context.Context) (int, error)
}

type MigrateCmd struct {
	Database string `help:"SQLite path or PostgreSQL connection string (overrides WELLFIT_DATABASE)."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	cfg, err := config.LoadServer(ctx.ConfigDir)
	if err != nil {
		return err
	}
	if c.Database != "" {
		cfg.Database = c.Database
	}

	// Init applies every pending migration.
	store, err := cli.InitStore(context.Background(), cfg.Database)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer store.Close()

	if sv, ok := store.(schemaVersioner); ok {
		version, err := sv.SchemaVersion(context.Background())
		if err != nil {
			return err
		}
		ctx.Printf("Database is at schema version %d (%s).\n", version, store.Driver())
		return nil
	}
	ctx.Printf("Database is up to date (%s).\n", store.Driver())
	return nil
}
