package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/config"
	"github.com/osse101/CashPoolRPG_Go/internal/inventory"
	"github.com/osse101/CashPoolRPG_Go/internal/loot"
	"github.com/osse101/CashPoolRPG_Go/internal/market"
	"github.com/osse101/CashPoolRPG_Go/internal/player"
	"github.com/osse101/CashPoolRPG_Go/internal/rarity"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
	"github.com/osse101/CashPoolRPG_Go/internal/tournament"
)

// Services holds every economy service, all sharing one economy lock.
type Services struct {
	Player     player.Service
	Inventory  inventory.Service
	Market     market.Service
	Tournament tournament.Service
	Rarity     *rarity.Table
}

// InitializeServices loads the rarity table and wires the services over repo.
func InitializeServices(cfg *config.Config, repo repository.Economy) (*Services, error) {
	table, err := rarity.NewLoader().Load(cfg.RarityTablePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRarity, err)
	}
	slog.Info(LogMsgRarityTableLoaded, "path", cfg.RarityTablePath, "tiers", len(table.Tiers))

	engine, err := loot.NewEngine(table, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEngine, err)
	}

	lock := concurrency.NewEconomyLock()
	return &Services{
		Player:     player.NewService(repo, lock),
		Inventory:  inventory.NewService(repo, lock, engine),
		Market:     market.NewService(repo, lock, table),
		Tournament: tournament.NewService(repo, lock, cfg.TournamentBuyIn),
		Rarity:     table,
	}, nil
}
