package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
)

func testPlayer(id string) *domain.Player {
	p := domain.NewPlayer(id, "Player "+id)
	p.Tokens = 40
	p.Chests = 1
	p.Items = []domain.Item{{ID: 1, Name: "Copper Ring", Slot: domain.SlotTrinket, Rarity: domain.RarityCommon, Power: 1}}
	p.Equipment[domain.SlotTrinket] = 1
	return p
}

func testListing(seller string) domain.Listing {
	return domain.Listing{
		ID:       uuid.New(),
		SellerID: seller,
		Item:     domain.Item{ID: 3, Name: "Chainmail", Slot: domain.SlotBody, Rarity: domain.RarityUncommon, Power: 8},
		Price:    50,
		ListedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestStore_CommitPublishesAllDocuments(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SavePlayer(ctx, testPlayer("a")))
	require.NoError(t, tx.SaveListings(ctx, []domain.Listing{testListing("a")}))
	require.NoError(t, tx.SaveQueue(ctx, &domain.TournamentQueue{Players: []string{"a"}}))

	// staged reads see the writes
	staged, err := tx.GetPlayer(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, staged)

	require.NoError(t, tx.Commit(ctx))

	p, err := s.GetPlayer(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 40, p.Tokens)

	listings, err := s.GetListings(ctx)
	require.NoError(t, err)
	assert.Len(t, listings, 1)

	q, err := s.GetQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, q.Players)
}

func TestStore_RollbackDiscards(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SavePlayer(ctx, testPlayer("a")))
	require.NoError(t, tx.Rollback(ctx))

	p, err := s.GetPlayer(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, p)

	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)
	assert.ErrorIs(t, tx.Commit(ctx), repository.ErrTxClosed)
}

func TestStore_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SavePlayer(ctx, testPlayer("a")))
	require.NoError(t, tx.Commit(ctx))

	p, err := s.GetPlayer(ctx, "a")
	require.NoError(t, err)
	p.Tokens = 9999
	p.Items = nil

	again, err := s.GetPlayer(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 40, again.Tokens)
	assert.Len(t, again.Items, 1)
}

func TestStore_SaveRejectsInvalidDocuments(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	bad := testPlayer("a")
	bad.Tokens = -5
	assert.ErrorIs(t, tx.SavePlayer(ctx, bad), domain.ErrStorage)

	listing := testListing("a")
	listing.Price = 0
	assert.ErrorIs(t, tx.SaveListings(ctx, []domain.Listing{listing}), domain.ErrStorage)

	full := &domain.TournamentQueue{Players: []string{"1", "2", "3", "4", "5", "6"}}
	assert.ErrorIs(t, tx.SaveQueue(ctx, full), domain.ErrStorage)
}

func TestStore_Snapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "economy.json")

	t.Run("missing file starts empty", func(t *testing.T) {
		s, err := Open(path)
		require.NoError(t, err)
		q, err := s.GetQueue(ctx)
		require.NoError(t, err)
		assert.Empty(t, q.Players)
	})

	t.Run("commits survive reopen", func(t *testing.T) {
		s, err := Open(path)
		require.NoError(t, err)
		tx, err := s.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.SavePlayer(ctx, testPlayer("a")))
		listing := testListing("a")
		require.NoError(t, tx.SaveListings(ctx, []domain.Listing{listing}))
		require.NoError(t, tx.SaveQueue(ctx, &domain.TournamentQueue{Players: []string{"a"}}))
		require.NoError(t, tx.Commit(ctx))

		reopened, err := Open(path)
		require.NoError(t, err)
		p, err := reopened.GetPlayer(ctx, "a")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 1, p.Equipment[domain.SlotTrinket])

		listings, err := reopened.GetListings(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, listing.ID, listings[0].ID)
	})

	t.Run("corrupt snapshot is a storage error", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"players": {"a": {"id": "a", "tokens": -1}}}`), 0o600))

		_, err := Open(bad)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("failed snapshot write leaves state unchanged", func(t *testing.T) {
		s := NewStore()
		s.snapshotPath = filepath.Join(t.TempDir(), "missing-dir", "economy.json")

		tx, err := s.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.SavePlayer(ctx, testPlayer("a")))

		err = tx.Commit(ctx)
		assert.ErrorIs(t, err, domain.ErrStorage)

		p, err := s.GetPlayer(ctx, "a")
		require.NoError(t, err)
		assert.Nil(t, p)

		// lock was released
		next, err := s.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, next.Rollback(ctx))
	})
}
