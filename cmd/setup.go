package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/contenthub/internal/repositories"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	r.writePlain("✓ Config written to %s\n", path)
	r.writePlain("Edit [store] driver to choose sqlite, postgres, supabase, fixture or none.\n")
	return nil
}

// SetupDatabase initializes the SQLite database and runs migrations, optionally seeding demo content.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config := r.config
	if config == nil {
		config = shared.DefaultConfig()
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := repositories.OpenSQLite(config.Database)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	if cmd.Bool("seed") {
		r.logger.Info("loading demo content")
		if err := shared.Seed(db.DB()); err != nil {
			return err
		}
	}

	versions, err := shared.AppliedVersions(db.DB())
	if err != nil {
		return fmt.Errorf("failed to read migration state: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	r.writePlain("✓ Database ready at %s (%d migrations applied)\n", config.Database.Path, len(versions))
	if cmd.Bool("seed") {
		r.writePlain("✓ Demo content loaded\n")
	}
	return nil
}
