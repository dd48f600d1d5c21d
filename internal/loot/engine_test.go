package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/rarity"
)

// sequence returns a source that replays values in order, cycling.
func sequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestSelectTier_Boundaries(t *testing.T) {
	e, err := NewEngine(rarity.DefaultTable(), nil)
	require.NoError(t, err)
	impl := e.(*engine)

	tests := []struct {
		rnd  float64
		want domain.Rarity
	}{
		{0.0, domain.RarityCommon},
		{0.6999, domain.RarityCommon},
		{0.705, domain.RarityUncommon},
		{0.9299, domain.RarityUncommon},
		{0.935, domain.RarityRare},
		{0.99999, domain.RarityRare},
	}
	for _, tt := range tests {
		got := selectTier(impl.tiers, impl.totalWeight, tt.rnd)
		assert.Equal(t, tt.want, got.Rarity, "rnd=%v", tt.rnd)
	}
}

func TestRollChest_Deterministic(t *testing.T) {
	// ARRANGE: rare tier, last catalog entry, max bonus
	e, err := NewEngine(rarity.DefaultTable(), sequence(0.95, 0.999, 0.999))
	require.NoError(t, err)

	// ACT
	roll := e.RollChest()

	// ASSERT
	assert.Equal(t, domain.RarityRare, roll.Rarity)
	assert.Equal(t, "Loaded Die", roll.ItemName)
	assert.Equal(t, domain.SlotTrinket, roll.Slot)
	assert.Equal(t, 18, roll.Power)
	assert.Equal(t, 30, roll.TokenBonus)

	item := roll.Item(4)
	assert.Equal(t, 4, item.ID)
	assert.NoError(t, item.Validate())
}

func TestRollChest_BonusWithinRange(t *testing.T) {
	e, err := NewEngine(rarity.DefaultTable(), sequence(0.1, 0.5, 0.0))
	require.NoError(t, err)
	assert.Equal(t, 10, e.RollChest().TokenBonus)

	src := rand.New(rand.NewSource(7))
	e, err = NewEngine(rarity.DefaultTable(), src.Float64)
	require.NoError(t, err)
	for i := 0; i < 5000; i++ {
		roll := e.RollChest()
		require.GreaterOrEqual(t, roll.TokenBonus, 10)
		require.LessOrEqual(t, roll.TokenBonus, 30)
		require.NotEmpty(t, roll.ItemName)
	}
}

func TestRollChest_CommonFraction(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	const rolls = 100_000
	src := rand.New(rand.NewSource(42))
	e, err := NewEngine(rarity.DefaultTable(), src.Float64)
	require.NoError(t, err)

	counts := map[domain.Rarity]int{}
	for i := 0; i < rolls; i++ {
		counts[e.RollChest().Rarity]++
	}

	// Five standard deviations of a binomial(100000, 0.7) is about 0.0073.
	common := float64(counts[domain.RarityCommon]) / rolls
	assert.InDelta(t, 0.70, common, 0.0075)
	assert.InDelta(t, 0.23, float64(counts[domain.RarityUncommon])/rolls, 0.0070)
	assert.InDelta(t, 0.07, float64(counts[domain.RarityRare])/rolls, 0.0045)
	assert.Equal(t, rolls, counts[domain.RarityCommon]+counts[domain.RarityUncommon]+counts[domain.RarityRare])
}

func TestNewEngine_RejectsInvalidTable(t *testing.T) {
	_, err := NewEngine(nil, nil)
	assert.Error(t, err)

	table := rarity.DefaultTable()
	table.Tiers[0].Weight = 10
	_, err = NewEngine(table, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), rarity.ErrMsgWeightSum)
}

func TestPickIndex_Clamps(t *testing.T) {
	assert.Equal(t, 0, pickIndex(5, 0))
	assert.Equal(t, 4, pickIndex(5, 0.9999))
	assert.Equal(t, 4, pickIndex(5, 1.0))
	assert.Equal(t, 0, pickIndex(1, 0.5))
}
