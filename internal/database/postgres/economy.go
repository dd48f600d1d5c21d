package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CashPoolRPG_Go/internal/database"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EconomyRepository stores the economy documents as JSONB rows.
type EconomyRepository struct {
	db *pgxpool.Pool
}

var _ repository.Economy = (*EconomyRepository)(nil)

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

func (r *EconomyRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, r.db, playerID, false)
}

func (r *EconomyRepository) GetListings(ctx context.Context) ([]domain.Listing, error) {
	data, err := getDocument(ctx, r.db, docMarket, false)
	if err != nil {
		return nil, err
	}
	return database.DecodeListings(data)
}

func (r *EconomyRepository) GetQueue(ctx context.Context) (*domain.TournamentQueue, error) {
	data, err := getDocument(ctx, r.db, docTournament, false)
	if err != nil {
		return nil, err
	}
	return database.DecodeQueue(data)
}

func (r *EconomyRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return domain.StorageError(database.ErrMsgFailedToPingDatabase, err)
	}
	return nil
}

func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, domain.StorageError(database.ErrMsgFailedToBeginTransaction, err)
	}
	return &economyTx{tx: tx}, nil
}

// economyTx reads rows FOR UPDATE so concurrent writers queue behind it.
type economyTx struct {
	tx pgx.Tx
}

func (t *economyTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, playerID, true)
}

func (t *economyTx) SavePlayer(ctx context.Context, player *domain.Player) error {
	data, err := database.EncodePlayer(player)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, upsertPlayerSQL, player.ID, data)
	if err != nil {
		return domain.StorageError("save player", err)
	}
	return nil
}

func (t *economyTx) GetListings(ctx context.Context) ([]domain.Listing, error) {
	data, err := getDocument(ctx, t.tx, docMarket, true)
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
	data, err := getDocument(ctx, t.tx, docTournament, true)
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
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return domain.StorageError("commit", err)
	}
	return nil
}

func (t *economyTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return domain.StorageError("rollback", err)
	}
	return nil
}

func (t *economyTx) saveDocument(ctx context.Context, name string, data []byte) error {
	_, err := t.tx.Exec(ctx, upsertDocumentSQL, name, data)
	if err != nil {
		return domain.StorageError("save "+name, err)
	}
	return nil
}

func getPlayer(ctx context.Context, q querier, playerID string, forUpdate bool) (*domain.Player, error) {
	query := selectPlayerSQL
	if forUpdate {
		query += forUpdateClause
	}
	var data []byte
	err := q.QueryRow(ctx, query, playerID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StorageError("get player", err)
	}
	return database.DecodePlayer(playerID, data)
}

// getDocument reads a named singleton document. A missing row reads as the
// empty document so a freshly migrated database behaves like an empty one.
func getDocument(ctx context.Context, q querier, name string, forUpdate bool) ([]byte, error) {
	query := selectDocumentSQL
	if forUpdate {
		query += forUpdateClause
	}
	var data []byte
	err := q.QueryRow(ctx, query, name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return emptyDocument(name), nil
		}
		return nil, domain.StorageError("get "+name, err)
	}
	return data, nil
}

func emptyDocument(name string) []byte {
	if name == docTournament {
		return []byte(emptyTournamentDocument)
	}
	return []byte(emptyMarketDocument)
}
