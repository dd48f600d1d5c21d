// Package memory provides an in-process economy store. With a snapshot path
// it also persists every commit to a JSON file and reloads it on open.
package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
	"github.com/osse101/CashPoolRPG_Go/internal/utils"
)

// Snapshot is the on-disk layout of the file-backed store.
type Snapshot struct {
	Players    map[string]*domain.Player `json:"players"`
	Market     []domain.Listing          `json:"market"`
	Tournament domain.TournamentQueue    `json:"tournament"`
}

// Store keeps the three economy documents in memory. Transactions hold the
// store lock from BeginTx until Commit or Rollback, so they run one at a time.
type Store struct {
	mu           sync.Mutex
	players      map[string]*domain.Player
	listings     []domain.Listing
	queue        *domain.TournamentQueue
	snapshotPath string
}

var _ repository.Economy = (*Store)(nil)

// NewStore creates an empty, purely in-memory store.
func NewStore() *Store {
	return &Store{
		players:  make(map[string]*domain.Player),
		listings: []domain.Listing{},
		queue:    &domain.TournamentQueue{Players: []string{}},
	}
}

// Open creates a store persisted to path. An absent file starts empty; an
// existing one is loaded and validated.
func Open(path string) (*Store, error) {
	s := NewStore()
	s.snapshotPath = path

	var snap Snapshot
	if err := utils.LoadJSON(path, &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, domain.StorageError("load snapshot", err)
	}

	for key, p := range snap.Players {
		if p == nil {
			return nil, domain.StorageError("load snapshot", fmt.Errorf("player %q is null", key))
		}
		p.Normalize()
		if p.ID != key {
			return nil, domain.StorageError("load snapshot", fmt.Errorf("player %q stored under %q", p.ID, key))
		}
		if err := p.Validate(); err != nil {
			return nil, domain.StorageError("load snapshot", err)
		}
		s.players[key] = p
	}
	if snap.Market != nil {
		if err := domain.ValidateListings(snap.Market); err != nil {
			return nil, domain.StorageError("load snapshot", err)
		}
		s.listings = snap.Market
	}
	if err := snap.Tournament.Validate(); err != nil {
		return nil, domain.StorageError("load snapshot", err)
	}
	s.queue = snap.Tournament.Clone()
	return s, nil
}

// GetPlayer returns a copy of the profile, or nil if the identity is unknown.
func (s *Store) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[playerID].Clone(), nil
}

// GetListings returns a copy of the marketplace sequence.
func (s *Store) GetListings(ctx context.Context) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.listings), nil
}

// GetQueue returns a copy of the tournament roster.
func (s *Store) GetQueue(ctx context.Context) (*domain.TournamentQueue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Clone(), nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// BeginTx locks the store until the transaction ends.
func (s *Store) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StorageError("begin transaction", err)
	}
	s.mu.Lock()
	return &tx{store: s, players: make(map[string]*domain.Player)}, nil
}

type tx struct {
	store    *Store
	players  map[string]*domain.Player
	listings []domain.Listing
	queue    *domain.TournamentQueue
	done     bool
}

func (t *tx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	if t.done {
		return nil, repository.ErrTxClosed
	}
	if p, ok := t.players[playerID]; ok {
		return p.Clone(), nil
	}
	return t.store.players[playerID].Clone(), nil
}

func (t *tx) SavePlayer(ctx context.Context, player *domain.Player) error {
	if t.done {
		return repository.ErrTxClosed
	}
	if player == nil {
		return domain.StorageError("save player", fmt.Errorf("nil player"))
	}
	p := player.Clone()
	p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.StorageError("save player", err)
	}
	t.players[p.ID] = p
	return nil
}

func (t *tx) GetListings(ctx context.Context) ([]domain.Listing, error) {
	if t.done {
		return nil, repository.ErrTxClosed
	}
	if t.listings != nil {
		return slices.Clone(t.listings), nil
	}
	return slices.Clone(t.store.listings), nil
}

func (t *tx) SaveListings(ctx context.Context, listings []domain.Listing) error {
	if t.done {
		return repository.ErrTxClosed
	}
	if err := domain.ValidateListings(listings); err != nil {
		return domain.StorageError("save listings", err)
	}
	t.listings = slices.Clone(listings)
	if t.listings == nil {
		t.listings = []domain.Listing{}
	}
	return nil
}

func (t *tx) GetQueue(ctx context.Context) (*domain.TournamentQueue, error) {
	if t.done {
		return nil, repository.ErrTxClosed
	}
	if t.queue != nil {
		return t.queue.Clone(), nil
	}
	return t.store.queue.Clone(), nil
}

func (t *tx) SaveQueue(ctx context.Context, queue *domain.TournamentQueue) error {
	if t.done {
		return repository.ErrTxClosed
	}
	q := queue.Clone()
	if err := q.Validate(); err != nil {
		return domain.StorageError("save tournament queue", err)
	}
	t.queue = q
	return nil
}

// Commit publishes the staged documents. With a snapshot path the file is
// written first; if that fails nothing is published.
func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	s := t.store
	defer s.mu.Unlock()

	players := s.players
	if len(t.players) > 0 {
		players = make(map[string]*domain.Player, len(s.players)+len(t.players))
		for k, v := range s.players {
			players[k] = v
		}
		for k, v := range t.players {
			players[k] = v
		}
	}
	listings := s.listings
	if t.listings != nil {
		listings = t.listings
	}
	queue := s.queue
	if t.queue != nil {
		queue = t.queue
	}

	if s.snapshotPath != "" {
		snap := Snapshot{Players: players, Market: listings, Tournament: *queue}
		if err := utils.SaveJSON(s.snapshotPath, snap); err != nil {
			return domain.StorageError("write snapshot", err)
		}
	}

	s.players = players
	s.listings = listings
	s.queue = queue
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}
