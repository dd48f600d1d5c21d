package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
	"github.com/osse101/CashPoolRPG_Go/internal/metrics"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

// Service is the player profile store's public surface.
type Service interface {
	// Register returns the profile for playerID, creating an empty one on
	// first contact. An existing profile only has its display name refreshed.
	Register(ctx context.Context, playerID, displayName string) (*domain.Player, error)
	// GetProfile returns balances, the collection, the equipped build and
	// total power. Unknown identities yield domain.ErrPlayerNotFound.
	GetProfile(ctx context.Context, playerID string) (*domain.Profile, error)
}

type service struct {
	repo  repository.Economy
	lock  *concurrency.EconomyLock
	cache *registrationCache
}

// NewService creates a new player service
func NewService(repo repository.Economy, lock *concurrency.EconomyLock) Service {
	return &service{
		repo:  repo,
		lock:  lock,
		cache: newRegistrationCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) Register(ctx context.Context, playerID, displayName string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	playerID, displayName, err := normalizeIdentity(playerID, displayName)
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgRegisterCalled, "player_id", playerID, "display_name", displayName)

	if s.cache.Seen(playerID, displayName) {
		if p, err := s.readPlayer(ctx, playerID); err == nil && p != nil {
			return p, nil
		}
	}

	w := s.lock.Writer()
	w.Lock()
	defer w.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.RecordStorageError(OpRegister, err)
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPlayer(ctx, playerID)
	if err != nil {
		metrics.RecordStorageError(OpRegister, err)
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}

	created := false
	switch {
	case p == nil:
		p = domain.NewPlayer(playerID, displayName)
		created = true
	case p.DisplayName != displayName:
		p.DisplayName = displayName
	default:
		s.cache.Set(playerID, displayName)
		return p, nil
	}

	if err := tx.SavePlayer(ctx, p); err != nil {
		metrics.RecordStorageError(OpRegister, err)
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		metrics.RecordStorageError(OpRegister, err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	s.cache.Set(playerID, displayName)
	if created {
		metrics.PlayersRegistered.Inc()
		log.Info(LogMsgPlayerCreated, "player_id", playerID)
	} else {
		log.Info(LogMsgPlayerRenamed, "player_id", playerID, "display_name", displayName)
	}
	return p, nil
}

func (s *service) GetProfile(ctx context.Context, playerID string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetProfileCalled, "player_id", playerID)

	p, err := s.readPlayer(ctx, playerID)
	if err != nil {
		metrics.RecordStorageError(OpGetProfile, err)
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}

	return &domain.Profile{
		Player:     p,
		Equipped:   p.EquippedItems(),
		TotalPower: p.TotalPower(),
	}, nil
}

func (s *service) readPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	r := s.lock.Reader()
	r.Lock()
	defer r.Unlock()
	return s.repo.GetPlayer(ctx, playerID)
}

func normalizeIdentity(playerID, displayName string) (string, string, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return "", "", fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = playerID
	}
	return playerID, displayName, nil
}
