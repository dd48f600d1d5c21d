package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CashPoolRPG_Go/internal/config"
	"github.com/osse101/CashPoolRPG_Go/internal/database"
	"github.com/osse101/CashPoolRPG_Go/internal/database/memory"
	"github.com/osse101/CashPoolRPG_Go/internal/database/postgres"
	"github.com/osse101/CashPoolRPG_Go/internal/database/sqlite"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

// Store is the economy repository selected by STORE_DRIVER together with
// whatever must be released on shutdown.
type Store struct {
	Economy repository.Economy
	closeFn func() error
}

// Close releases the underlying connections or files.
func (s *Store) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// OpenStore connects the configured backend and applies migrations where the
// backend has a schema.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var store *Store
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, PoolMaxConnIdleTime, PoolMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		store = &Store{
			Economy: postgres.NewEconomyRepository(pool),
			closeFn: func() error { pool.Close(); return nil },
		}
	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		store = &Store{Economy: db, closeFn: db.Close}
	case config.StoreDriverFile:
		mem, err := memory.Open(cfg.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		store = &Store{Economy: mem}
	case config.StoreDriverMemory:
		store = &Store{Economy: memory.NewStore()}
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}
