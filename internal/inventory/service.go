// Package inventory manages one player's chests, items and equipment slots.
package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
	"github.com/osse101/CashPoolRPG_Go/internal/loot"
	"github.com/osse101/CashPoolRPG_Go/internal/metrics"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

// Service defines the inventory and equipment operations
type Service interface {
	// OpenChest consumes one chest, adds the rolled item and grants the token bonus.
	OpenChest(ctx context.Context, playerID string) (*domain.ChestResult, error)
	// Equip places the item at the 0-based index into its slot, replacing any
	// previous occupant, which stays in the collection.
	Equip(ctx context.Context, playerID string, index int) (*domain.EquipResult, error)
	// Unequip clears slot and returns the item that occupied it.
	Unequip(ctx context.Context, playerID string, slot string) (*domain.Item, error)
	TotalPower(ctx context.Context, playerID string) (int, error)
}

type service struct {
	repo   repository.Economy
	lock   *concurrency.EconomyLock
	engine loot.Engine
}

// NewService creates a new inventory service
func NewService(repo repository.Economy, lock *concurrency.EconomyLock, engine loot.Engine) Service {
	return &service{
		repo:   repo,
		lock:   lock,
		engine: engine,
	}
}

func (s *service) OpenChest(ctx context.Context, playerID string) (*domain.ChestResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgOpenChestCalled, "player_id", playerID)

	var result *domain.ChestResult
	var roll loot.Roll
	err := s.mutate(ctx, OpOpenChest, playerID, func(p *domain.Player) error {
		if p.Chests <= 0 {
			log.Warn(LogMsgNoChests, "player_id", playerID)
			return domain.ErrNoChestsAvailable
		}
		roll = s.engine.RollChest()
		p.Chests--
		item := p.AddItem(roll.Item(p.NextItemID()))
		p.Tokens += roll.TokenBonus
		result = &domain.ChestResult{
			Item:            item,
			TokenBonus:      roll.TokenBonus,
			ChestsRemaining: p.Chests,
			Tokens:          p.Tokens,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ChestsOpened.WithLabelValues(string(roll.Rarity)).Inc()
	metrics.TokensGranted.Add(float64(roll.TokenBonus))
	log.Info(LogMsgChestOpened, "player_id", playerID, "item", result.Item.Name,
		"rarity", result.Item.Rarity, "token_bonus", result.TokenBonus)
	return result, nil
}

func (s *service) Equip(ctx context.Context, playerID string, index int) (*domain.EquipResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "player_id", playerID, "index", index)

	var result *domain.EquipResult
	err := s.mutate(ctx, OpEquip, playerID, func(p *domain.Player) error {
		if index < 0 || index >= len(p.Items) {
			return fmt.Errorf("%w: position %d of %d", domain.ErrInvalidIndex, index+1, len(p.Items))
		}
		item := p.Items[index]
		result = &domain.EquipResult{Equipped: item}
		if prev, ok := p.Equipped(item.Slot); ok && prev.ID != item.ID {
			result.Replaced = &prev
		}
		p.Equipment[item.Slot] = item.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemEquipped, "player_id", playerID, "item", result.Equipped.Name, "slot", result.Equipped.Slot)
	return result, nil
}

func (s *service) Unequip(ctx context.Context, playerID string, slot string) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "player_id", playerID, "slot", slot)

	parsed, err := domain.ParseSlot(slot)
	if err != nil {
		return nil, err
	}

	var removed domain.Item
	err = s.mutate(ctx, OpUnequip, playerID, func(p *domain.Player) error {
		item, ok := p.Equipped(parsed)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrSlotEmpty, parsed)
		}
		delete(p.Equipment, parsed)
		removed = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemUnequipped, "player_id", playerID, "item", removed.Name, "slot", parsed)
	return &removed, nil
}

func (s *service) TotalPower(ctx context.Context, playerID string) (int, error) {
	r := s.lock.Reader()
	r.Lock()
	defer r.Unlock()

	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		metrics.RecordStorageError(OpTotalPower, err)
		return 0, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return p.TotalPower(), nil
}

// mutate runs fn against a transaction-local copy of the player under the
// economy write lock and commits only if fn succeeds.
func (s *service) mutate(ctx context.Context, op, playerID string, fn func(p *domain.Player) error) error {
	w := s.lock.Writer()
	w.Lock()
	defer w.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.RecordStorageError(op, err)
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPlayer(ctx, playerID)
	if err != nil {
		metrics.RecordStorageError(op, err)
		return fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}

	if err := fn(p); err != nil {
		return err
	}

	if err := tx.SavePlayer(ctx, p); err != nil {
		metrics.RecordStorageError(op, err)
		return fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		metrics.RecordStorageError(op, err)
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
