package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CashPoolRPG_Go/internal/concurrency"
	"github.com/osse101/CashPoolRPG_Go/internal/database/memory"
	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/loot"
	"github.com/osse101/CashPoolRPG_Go/internal/rarity"
	"github.com/osse101/CashPoolRPG_Go/internal/repository/mocks"
)

// fixedEngine always returns the same roll.
type fixedEngine struct {
	roll loot.Roll
}

func (f fixedEngine) RollChest() loot.Roll { return f.roll }

var loadedDie = loot.Roll{
	Rarity:     domain.RarityRare,
	ItemName:   "Loaded Die",
	Slot:       domain.SlotTrinket,
	Power:      18,
	TokenBonus: 25,
}

func newTestService(t *testing.T, engine loot.Engine) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewService(store, concurrency.NewEconomyLock(), engine), store
}

func seed(t *testing.T, store *memory.Store, p *domain.Player) {
	t.Helper()
	ctx := context.Background()
	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SavePlayer(ctx, p))
	require.NoError(t, tx.Commit(ctx))
}

func load(t *testing.T, store *memory.Store, id string) *domain.Player {
	t.Helper()
	p, err := store.GetPlayer(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func armory() *domain.Player {
	p := domain.NewPlayer("p1", "Alice")
	p.Items = []domain.Item{
		{ID: 1, Name: "Leather Cap", Slot: domain.SlotHead, Rarity: domain.RarityCommon, Power: 2},
		{ID: 2, Name: "Iron Helm", Slot: domain.SlotHead, Rarity: domain.RarityUncommon, Power: 6},
		{ID: 3, Name: "Rusty Dagger", Slot: domain.SlotWeapon, Rarity: domain.RarityCommon, Power: 4},
	}
	return p
}

func TestOpenChest(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes a chest and grants item and bonus", func(t *testing.T) {
		// ARRANGE
		svc, store := newTestService(t, fixedEngine{roll: loadedDie})
		p := armory()
		p.Chests = 2
		p.Tokens = 5
		seed(t, store, p)

		// ACT
		result, err := svc.OpenChest(ctx, "p1")

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, 4, result.Item.ID)
		assert.Equal(t, "Loaded Die", result.Item.Name)
		assert.Equal(t, domain.RarityRare, result.Item.Rarity)
		assert.Equal(t, 25, result.TokenBonus)
		assert.Equal(t, 1, result.ChestsRemaining)
		assert.Equal(t, 30, result.Tokens)

		stored := load(t, store, "p1")
		assert.Equal(t, 1, stored.Chests)
		assert.Equal(t, 30, stored.Tokens)
		require.Len(t, stored.Items, 4)
		assert.Equal(t, result.Item, stored.Items[3])
	})

	t.Run("first item gets id 1", func(t *testing.T) {
		svc, store := newTestService(t, fixedEngine{roll: loadedDie})
		p := domain.NewPlayer("p1", "Alice")
		p.Chests = 1
		seed(t, store, p)

		result, err := svc.OpenChest(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, 1, result.Item.ID)
	})

	t.Run("chest count decreases by one per call until exhausted", func(t *testing.T) {
		engine, err := loot.NewEngine(rarity.DefaultTable(), nil)
		require.NoError(t, err)
		svc, store := newTestService(t, engine)
		p := domain.NewPlayer("p1", "Alice")
		p.Chests = 5
		seed(t, store, p)

		for want := 4; want >= 0; want-- {
			result, err := svc.OpenChest(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, want, result.ChestsRemaining)
		}

		before := load(t, store, "p1")
		_, err = svc.OpenChest(ctx, "p1")
		assert.ErrorIs(t, err, domain.ErrNoChestsAvailable)
		assert.ErrorIs(t, err, domain.ErrInsufficientResource)
		assert.Equal(t, before, load(t, store, "p1"))
		assert.Len(t, before.Items, 5)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc, _ := newTestService(t, fixedEngine{roll: loadedDie})
		_, err := svc.OpenChest(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

func TestOpenChest_CommitFailureLeavesNoEffect(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	repo := new(mocks.MockEconomy)
	tx := new(mocks.MockEconomyTx)
	svc := NewService(repo, concurrency.NewEconomyLock(), fixedEngine{roll: loadedDie})

	p := domain.NewPlayer("p1", "Alice")
	p.Chests = 1
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlayer", ctx, "p1").Return(p, nil)
	tx.On("SavePlayer", ctx, mock.Anything).Return(nil)
	tx.On("Commit", ctx).Return(domain.StorageError("commit", assert.AnError))
	tx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := svc.OpenChest(ctx, "p1")

	// ASSERT
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrStorage)
	tx.AssertCalled(t, "Rollback", ctx)
}

func TestEquip(t *testing.T) {
	ctx := context.Background()

	t.Run("equips into the item's slot", func(t *testing.T) {
		svc, store := newTestService(t, fixedEngine{})
		seed(t, store, armory())

		result, err := svc.Equip(ctx, "p1", 2)

		require.NoError(t, err)
		assert.Equal(t, "Rusty Dagger", result.Equipped.Name)
		assert.Nil(t, result.Replaced)
		assert.Equal(t, 3, load(t, store, "p1").Equipment[domain.SlotWeapon])
	})

	t.Run("replaces previous occupant without destroying it", func(t *testing.T) {
		svc, store := newTestService(t, fixedEngine{})
		p := armory()
		p.Equipment[domain.SlotHead] = 1
		seed(t, store, p)

		result, err := svc.Equip(ctx, "p1", 1)

		require.NoError(t, err)
		require.NotNil(t, result.Replaced)
		assert.Equal(t, "Leather Cap", result.Replaced.Name)
		stored := load(t, store, "p1")
		assert.Equal(t, 2, stored.Equipment[domain.SlotHead])
		assert.Len(t, stored.Items, 3)
	})

	t.Run("re-equipping the same item reports no replacement", func(t *testing.T) {
		svc, store := newTestService(t, fixedEngine{})
		p := armory()
		p.Equipment[domain.SlotHead] = 2
		seed(t, store, p)

		result, err := svc.Equip(ctx, "p1", 1)

		require.NoError(t, err)
		assert.Nil(t, result.Replaced)
	})

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past end", 3},
	}
	for _, tt := range tests {
		t.Run("invalid index "+tt.name, func(t *testing.T) {
			svc, store := newTestService(t, fixedEngine{})
			seed(t, store, armory())

			_, err := svc.Equip(ctx, "p1", tt.index)

			assert.ErrorIs(t, err, domain.ErrInvalidIndex)
			assert.Empty(t, load(t, store, "p1").Equipment)
		})
	}
}

func TestUnequip(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the slot", func(t *testing.T) {
		svc, store := newTestService(t, fixedEngine{})
		p := armory()
		p.Equipment[domain.SlotWeapon] = 3
		seed(t, store, p)

		item, err := svc.Unequip(ctx, "p1", "Weapon")

		require.NoError(t, err)
		assert.Equal(t, "Rusty Dagger", item.Name)
		stored := load(t, store, "p1")
		assert.Empty(t, stored.Equipment)
		assert.Len(t, stored.Items, 3)
	})

	t.Run("unknown slot", func(t *testing.T) {
		svc, store := newTestService(t, fixedEngine{})
		seed(t, store, armory())

		_, err := svc.Unequip(ctx, "p1", "cape")

		assert.ErrorIs(t, err, domain.ErrInvalidSlot)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty slot", func(t *testing.T) {
		svc, store := newTestService(t, fixedEngine{})
		seed(t, store, armory())

		_, err := svc.Unequip(ctx, "p1", "legs")

		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
		assert.ErrorIs(t, err, domain.ErrStateConflict)
	})
}

func TestTotalPower(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, fixedEngine{})
	p := armory()
	p.Equipment[domain.SlotHead] = 2
	p.Equipment[domain.SlotWeapon] = 3
	seed(t, store, p)

	power, err := svc.TotalPower(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, power)

	_, err = svc.Unequip(ctx, "p1", "head")
	require.NoError(t, err)
	power, err = svc.TotalPower(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, power)

	_, err = svc.TotalPower(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
