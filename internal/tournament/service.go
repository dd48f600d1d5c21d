// Package tournament runs the single fixed-capacity tournament table and
// settles it into chest payouts.
package tournament

import (
	"context"
	"fmt"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
	"github.com/osse101/CashPoolRPG_Go/internal/metrics"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

// Service defines the tournament queue operations
type Service interface {
	// Join seats a registered player. A full table rejects joins until resolved.
	Join(ctx context.Context, playerID string) (*domain.JoinResult, error)
	Status(ctx context.Context) (*domain.QueueStatus, error)
	// Resolve awards every queued player a chest, the winner one more, and
	// clears the table. Callers are responsible for authorizing the request.
	Resolve(ctx context.Context, winnerID string) (*domain.Settlement, error)
}

type service struct {
	repo  repository.Economy
	lock  *concurrency.EconomyLock
	buyIn int
}

// NewService creates a new tournament service. buyIn is the per-seat amount
// recorded on settlements.
func NewService(repo repository.Economy, lock *concurrency.EconomyLock, buyIn int) Service {
	return &service{
		repo:  repo,
		lock:  lock,
		buyIn: buyIn,
	}
}

func (s *service) Join(ctx context.Context, playerID string) (*domain.JoinResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgJoinCalled, "player_id", playerID)

	w := s.lock.Writer()
	w.Lock()
	defer w.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.RecordStorageError(OpJoin, err)
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPlayer(ctx, playerID)
	if err != nil {
		metrics.RecordStorageError(OpJoin, err)
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}

	queue, err := tx.GetQueue(ctx)
	if err != nil {
		metrics.RecordStorageError(OpJoin, err)
		return nil, fmt.Errorf(ErrMsgGetQueueFailed, err)
	}
	if queue.Contains(playerID) {
		return nil, domain.ErrAlreadyQueued
	}
	if queue.State() == domain.QueueFull {
		log.Warn(LogMsgQueueFull, "player_id", playerID, "size", queue.Size())
		return nil, fmt.Errorf("%w: %d/%d seats taken", domain.ErrQueueFull, queue.Size(), domain.QueueCapacity)
	}

	queue.Players = append(queue.Players, playerID)
	if err := tx.SaveQueue(ctx, queue); err != nil {
		metrics.RecordStorageError(OpJoin, err)
		return nil, fmt.Errorf(ErrMsgSaveQueueFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		metrics.RecordStorageError(OpJoin, err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.TournamentJoins.Inc()
	result := &domain.JoinResult{
		Position: queue.Size(),
		Size:     queue.Size(),
		Capacity: domain.QueueCapacity,
		State:    queue.State(),
	}
	log.Info(LogMsgPlayerQueued, "player_id", playerID, "position", result.Position, "state", result.State)
	return result, nil
}

func (s *service) Status(ctx context.Context) (*domain.QueueStatus, error) {
	r := s.lock.Reader()
	r.Lock()
	defer r.Unlock()

	queue, err := s.repo.GetQueue(ctx)
	if err != nil {
		metrics.RecordStorageError(OpStatus, err)
		return nil, fmt.Errorf(ErrMsgGetQueueFailed, err)
	}

	status := &domain.QueueStatus{
		Entries:  make([]domain.QueueEntry, 0, queue.Size()),
		Size:     queue.Size(),
		Capacity: domain.QueueCapacity,
		State:    queue.State(),
	}
	for i, id := range queue.Players {
		entry := domain.QueueEntry{Position: i + 1, PlayerID: id, DisplayName: id}
		p, err := s.repo.GetPlayer(ctx, id)
		if err != nil {
			metrics.RecordStorageError(OpStatus, err)
			return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
		}
		if p != nil {
			entry.DisplayName = p.DisplayName
		}
		status.Entries = append(status.Entries, entry)
	}
	return status, nil
}

func (s *service) Resolve(ctx context.Context, winnerID string) (*domain.Settlement, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolveCalled, "winner_id", winnerID)

	w := s.lock.Writer()
	w.Lock()
	defer w.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.RecordStorageError(OpResolve, err)
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	queue, err := tx.GetQueue(ctx)
	if err != nil {
		metrics.RecordStorageError(OpResolve, err)
		return nil, fmt.Errorf(ErrMsgGetQueueFailed, err)
	}
	if queue.Size() == 0 {
		return nil, domain.ErrEmptyQueue
	}
	if !queue.Contains(winnerID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotQueued, winnerID)
	}

	settlement := &domain.Settlement{
		WinnerID: winnerID,
		Payouts:  make([]domain.Payout, 0, queue.Size()),
		BuyInPot: s.buyIn * queue.Size(),
	}
	for _, id := range queue.Players {
		p, err := tx.GetPlayer(ctx, id)
		if err != nil {
			metrics.RecordStorageError(OpResolve, err)
			return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
		}
		if p == nil {
			err := domain.StorageError("get participant", fmt.Errorf(ErrMsgUnknownParticipant, id))
			metrics.RecordStorageError(OpResolve, err)
			return nil, err
		}

		award := ParticipationChests
		if id == winnerID {
			award += WinnerBonusChests
			settlement.WinnerName = p.DisplayName
		}
		p.Chests += award
		if err := tx.SavePlayer(ctx, p); err != nil {
			metrics.RecordStorageError(OpResolve, err)
			return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
		}
		settlement.Payouts = append(settlement.Payouts, domain.Payout{
			PlayerID:    id,
			DisplayName: p.DisplayName,
			Chests:      award,
		})
		settlement.TotalChests += award
	}

	if err := tx.SaveQueue(ctx, &domain.TournamentQueue{Players: []string{}}); err != nil {
		metrics.RecordStorageError(OpResolve, err)
		return nil, fmt.Errorf(ErrMsgSaveQueueFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		metrics.RecordStorageError(OpResolve, err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.TournamentsResolved.Inc()
	metrics.ChestsAwarded.Add(float64(settlement.TotalChests))
	log.Info(LogMsgTournamentSettled, "winner_id", winnerID, "participants", len(settlement.Payouts),
		"total_chests", settlement.TotalChests, "buy_in_pot", settlement.BuyInPot)
	return settlement, nil
}
