package loot

import (
	"fmt"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/rarity"
	"github.com/osse101/CashPoolRPG_Go/internal/utils"
)

// Roll is the outcome of one chest: the item template drawn and the token bonus.
type Roll struct {
	Rarity     domain.Rarity
	ItemName   string
	Slot       domain.Slot
	Power      int
	TokenBonus int
}

// Item turns the roll into an owned item with the given id.
func (r Roll) Item(id int) domain.Item {
	return domain.Item{
		ID:     id,
		Name:   r.ItemName,
		Slot:   r.Slot,
		Rarity: r.Rarity,
		Power:  r.Power,
	}
}

// Engine draws chest contents.
type Engine interface {
	RollChest() Roll
}

// tierRef is a tier with a cumulative weight for weighted selection.
type tierRef struct {
	Tier        rarity.Tier
	CumulWeight int
}

type engine struct {
	tiers       []tierRef
	totalWeight int
	bonus       rarity.Range
	rnd         func() float64
}

// NewEngine flattens the table into cumulative weights. rnd must return values
// in [0, 1); pass nil for the default source.
func NewEngine(table *rarity.Table, rnd func() float64) (Engine, error) {
	if table == nil {
		return nil, fmt.Errorf("rarity table is required")
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rarity table: %w", err)
	}
	if rnd == nil {
		rnd = utils.RandomFloat
	}

	e := &engine{bonus: table.TokenBonus, rnd: rnd}
	for _, tier := range table.Tiers {
		e.totalWeight += tier.Weight
		e.tiers = append(e.tiers, tierRef{Tier: tier, CumulWeight: e.totalWeight})
	}
	return e, nil
}

// RollChest draws a rarity by weight, an item uniformly within that tier, and
// a token bonus uniformly within the configured range.
func (e *engine) RollChest() Roll {
	tier := selectTier(e.tiers, e.totalWeight, e.rnd())
	tmpl := tier.Items[pickIndex(len(tier.Items), e.rnd())]
	bonus := e.bonus.Min + pickIndex(e.bonus.Max-e.bonus.Min+1, e.rnd())

	return Roll{
		Rarity:     tier.Rarity,
		ItemName:   tmpl.Name,
		Slot:       tmpl.Slot,
		Power:      tmpl.Power,
		TokenBonus: bonus,
	}
}

// selectTier returns the tier chosen by a weighted roll in [0, totalWeight).
func selectTier(tiers []tierRef, totalWeight int, rnd float64) rarity.Tier {
	roll := int(rnd * float64(totalWeight))
	lo, hi := 0, len(tiers)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if tiers[mid].CumulWeight <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return tiers[lo].Tier
}

// pickIndex maps rnd in [0, 1) onto [0, n).
func pickIndex(n int, rnd float64) int {
	idx := int(rnd * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
