package repository

import (
	"context"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
)

// Economy is the persisted state of the game: the player profile mapping,
// the marketplace listing sequence and the tournament queue.
//
// Reads outside a transaction return snapshots. GetPlayer returns nil, nil for
// an unknown identity. Every document is validated on the way out; malformed
// data is reported as domain.ErrStorage.
type Economy interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetListings(ctx context.Context) ([]domain.Listing, error)
	GetQueue(ctx context.Context) (*domain.TournamentQueue, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
	Ping(ctx context.Context) error
}

// EconomyTx stages reads and writes that become visible together on Commit.
// Nothing written through a transaction is observable before Commit, and a
// failed Commit leaves the stored state as it was.
type EconomyTx interface {
	Tx
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	SavePlayer(ctx context.Context, player *domain.Player) error
	GetListings(ctx context.Context) ([]domain.Listing, error)
	SaveListings(ctx context.Context, listings []domain.Listing) error
	GetQueue(ctx context.Context) (*domain.TournamentQueue, error)
	SaveQueue(ctx context.Context, queue *domain.TournamentQueue) error
}
