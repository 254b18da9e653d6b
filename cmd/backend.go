package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/contenthub/internal/repositories"
	"github.com/desertthunder/contenthub/internal/services"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
	"github.com/desertthunder/contenthub/internal/store/postgres"
)

// OpenBackend selects and opens the content store named by cfg.Store.Driver.
//
// A remote driver without credentials falls back to the empty store, so every read
// returns an empty result instead of failing at startup.
func OpenBackend(cfg *shared.Config, logger *log.Logger) (store.Backend, error) {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, shared.ErrMissingCredentials) {
			logger.Warn("content store credentials missing, serving empty content", "driver", cfg.Store.Driver, "error", err)
			return store.NewEmpty(), nil
		}
		return nil, err
	}

	switch cfg.Store.Driver {
	case shared.DriverSQLite:
		db, err := repositories.OpenSQLite(cfg.Database)
		if err != nil {
			return nil, openError(cfg, err)
		}
		return db, nil
	case shared.DriverPostgres:
		pg, err := postgres.Open(cfg.Postgres, shared.WithLogger(logger, "driver", shared.DriverPostgres))
		if err != nil {
			return nil, openError(cfg, err)
		}
		return pg, nil
	case shared.DriverSupabase:
		sb, err := services.NewSupabaseService(cfg.Supabase)
		if err != nil {
			return nil, openError(cfg, err)
		}
		return sb, nil
	case shared.DriverFixture:
		fx, err := store.LoadFixture(cfg.Fixture.Path)
		if err != nil {
			return nil, openError(cfg, err)
		}
		return fx, nil
	case shared.DriverNone:
		return store.NewEmpty(), nil
	}
	return nil, fmt.Errorf("%w: %q", shared.ErrUnknownDriver, cfg.Store.Driver)
}

func openError(cfg *shared.Config, err error) error {
	return fmt.Errorf("failed to open %s content store: %w", cfg.Store.Driver, err)
}
