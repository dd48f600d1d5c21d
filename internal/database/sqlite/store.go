// Package sqlite provides a SQLite-backed economy store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/osse101/CashPoolRPG_Go/internal/database"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

const (
	docMarket     = "market"
	docTournament = "tournament"
)

// Store persists the economy documents in SQLite. The handle is limited to one
// connection, so transactions are serialized by the driver.
type Store struct {
	sqlDB *sql.DB
}

var _ repository.Economy = (*Store)(nil)

// Open opens a SQLite store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := database.Migrate(ctx, sqlDB, database.DriverSQLite); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, s.sqlDB, playerID)
}

func (s *Store) GetListings(ctx context.Context) ([]domain.Listing, error) {
	data, err := getDocument(ctx, s.sqlDB, docMarket)
	if err != nil {
		return nil, err
	}
	return database.DecodeListings(data)
}

func (s *Store) GetQueue(ctx context.Context) (*domain.TournamentQueue, error) {
	data, err := getDocument(ctx, s.sqlDB, docTournament)
	if err != nil {
		return nil, err
	}
	return database.DecodeQueue(data)
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return domain.StorageError("ping sqlite db", err)
	}
	return nil
}

func (s *Store) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.StorageError(database.ErrMsgFailedToBeginTransaction, err)
	}
	return &economyTx{tx: tx}, nil
}

type economyTx struct {
	tx *sql.Tx
}

func (t *economyTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, playerID)
}

func (t *economyTx) SavePlayer(ctx context.Context, player *domain.Player) error {
	data, err := database.EncodePlayer(player)
	if err != nil {
		return err
	}
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO players (player_id, document) VALUES (?, ?)
		 ON CONFLICT (player_id) DO UPDATE
		 SET document = excluded.document, updated_at = CURRENT_TIMESTAMP`,
		player.ID, string(data),
	)
	if err != nil {
		return domain.StorageError("save player", err)
	}
	return nil
}

func (t *economyTx) GetListings(ctx context.Context) ([]domain.Listing, error) {
	data, err := getDocument(ctx, t.tx, docMarket)
	if err != nil {
		return nil, err
	}
	return database.DecodeListings(data)
}

func (t *economyTx) SaveListings(ctx context.Context, listings []domain.Listing) error {
	data, err := database.EncodeListings(listings)
	if err != nil {
		return err
	}
	return t.saveDocument(ctx, docMarket, data)
}

func (t *economyTx) GetQueue(ctx context.Context) (*domain.TournamentQueue, error) {
	data, err := getDocument(ctx, t.tx, docTournament)
	if err != nil {
		return nil, err
	}
	return database.DecodeQueue(data)
}

func (t *economyTx) SaveQueue(ctx context.Context, queue *domain.TournamentQueue) error {
	data, err := database.EncodeQueue(queue)
	if err != nil {
		return err
	}
	return t.saveDocument(ctx, docTournament, data)
}

func (t *economyTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return domain.StorageError("commit", err)
	}
	return nil
}

func (t *economyTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return domain.StorageError("rollback", err)
	}
	return nil
}

func (t *economyTx) saveDocument(ctx context.Context, name string, data []byte) error {
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO economy_documents (name, document) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE
		 SET document = excluded.document, updated_at = CURRENT_TIMESTAMP`,
		name, string(data),
	)
	if err != nil {
		return domain.StorageError("save "+name, err)
	}
	return nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getPlayer(ctx context.Context, q queryer, playerID string) (*domain.Player, error) {
	var data string
	err := q.QueryRowContext(ctx, `SELECT document FROM players WHERE player_id = ?`, playerID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StorageError("get player", err)
	}
	return database.DecodePlayer(playerID, []byte(data))
}

func getDocument(ctx context.Context, q queryer, name string) ([]byte, error) {
	var data string
	err := q.QueryRowContext(ctx, `SELECT document FROM economy_documents WHERE name = ?`, name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if name == docTournament {
				return []byte(`{"players": []}`), nil
			}
			return []byte(`[]`), nil
		}
		return nil, domain.StorageError("get "+name, err)
	}
	return []byte(data), nil
}
