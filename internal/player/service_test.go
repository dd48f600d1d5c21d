package player

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/database/memory"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/repository"
	"github.com/osse101/CashPoolRPG_Go/internal/repository/mocks"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	return NewService(store, concurrency.NewEconomyLock()), store
}

// seed writes a profile directly to the store.
func seed(t *testing.T, store *memory.Store, p *domain.Player) {
	t.Helper()
	ctx := context.Background()
	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SavePlayer(ctx, p))
	require.NoError(t, tx.Commit(ctx))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an empty profile on first contact", func(t *testing.T) {
		svc, store := newTestService()

		p, err := svc.Register(ctx, "1001", "Alice")

		require.NoError(t, err)
		assert.Equal(t, "1001", p.ID)
		assert.Equal(t, "Alice", p.DisplayName)
		assert.Zero(t, p.Tokens)
		assert.Zero(t, p.Chests)
		assert.Empty(t, p.Items)
		assert.Empty(t, p.Equipment)

		stored, err := store.GetPlayer(ctx, "1001")
		require.NoError(t, err)
		assert.NotNil(t, stored)
	})

	t.Run("refreshes display name without touching balances", func(t *testing.T) {
		svc, store := newTestService()
		existing := domain.NewPlayer("1001", "Alice")
		existing.Tokens = 250
		existing.Chests = 3
		existing.Items = []domain.Item{{ID: 1, Name: "Loaded Die", Slot: domain.SlotTrinket, Rarity: domain.RarityRare, Power: 18}}
		seed(t, store, existing)

		p, err := svc.Register(ctx, "1001", "Alice the Bold")

		require.NoError(t, err)
		assert.Equal(t, "Alice the Bold", p.DisplayName)
		assert.Equal(t, 250, p.Tokens)
		assert.Equal(t, 3, p.Chests)
		assert.Len(t, p.Items, 1)
	})

	t.Run("is idempotent", func(t *testing.T) {
		svc, _ := newTestService()
		first, err := svc.Register(ctx, "1001", "Alice")
		require.NoError(t, err)
		second, err := svc.Register(ctx, "1001", "Alice")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("blank display name falls back to the id", func(t *testing.T) {
		svc, _ := newTestService()
		p, err := svc.Register(ctx, " 1001 ", "   ")
		require.NoError(t, err)
		assert.Equal(t, "1001", p.ID)
		assert.Equal(t, "1001", p.DisplayName)
	})

	t.Run("empty id is invalid input", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(ctx, "", "Alice")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("concurrent first contact creates one profile", func(t *testing.T) {
		svc, store := newTestService()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Register(ctx, "1001", "Alice")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		p, err := store.GetPlayer(ctx, "1001")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Zero(t, p.Tokens)
	})
}

func TestRegister_CachedSkipsWriteTransaction(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	repo := new(mocks.MockEconomy)
	tx := new(mocks.MockEconomyTx)
	svc := NewService(repo, concurrency.NewEconomyLock())

	repo.On("BeginTx", ctx).Return(tx, nil).Once()
	tx.On("GetPlayer", ctx, "1001").Return(nil, nil).Once()
	tx.On("SavePlayer", ctx, mock.AnythingOfType("*domain.Player")).Return(nil).Once()
	tx.On("Commit", ctx).Return(nil).Once()
	tx.On("Rollback", ctx).Return(repository.ErrTxClosed)
	repo.On("GetPlayer", ctx, "1001").Return(domain.NewPlayer("1001", "Alice"), nil).Once()

	// ACT
	_, err := svc.Register(ctx, "1001", "Alice")
	require.NoError(t, err)
	p, err := svc.Register(ctx, "1001", "Alice")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.DisplayName)
	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestRegister_StorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEconomy)
	tx := new(mocks.MockEconomyTx)
	svc := NewService(repo, concurrency.NewEconomyLock())

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlayer", ctx, "1001").Return(nil, nil)
	tx.On("SavePlayer", ctx, mock.Anything).Return(nil)
	tx.On("Commit", ctx).Return(domain.StorageError("commit", assert.AnError))
	tx.On("Rollback", ctx).Return(nil)

	_, err := svc.Register(ctx, "1001", "Alice")

	assert.ErrorIs(t, err, domain.ErrStorage)
	tx.AssertCalled(t, "Rollback", ctx)
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	p := domain.NewPlayer("1001", "Alice")
	p.Tokens = 40
	p.Chests = 2
	p.Items = []domain.Item{
		{ID: 1, Name: "Iron Helm", Slot: domain.SlotHead, Rarity: domain.RarityUncommon, Power: 6},
		{ID: 2, Name: "Rusty Dagger", Slot: domain.SlotWeapon, Rarity: domain.RarityCommon, Power: 4},
	}
	p.Equipment[domain.SlotHead] = 1
	seed(t, store, p)

	profile, err := svc.GetProfile(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, 40, profile.Player.Tokens)
	assert.Equal(t, 2, profile.Player.Chests)
	assert.Equal(t, 6, profile.TotalPower)
	require.Contains(t, profile.Equipped, domain.SlotHead)
	assert.Equal(t, "Iron Helm", profile.Equipped[domain.SlotHead].Name)
	assert.NotContains(t, profile.Equipped, domain.SlotWeapon)

	_, err = svc.GetProfile(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
