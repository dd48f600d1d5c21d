package rarity

import (
	"fmt"
	"strings"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
)

// ItemTemplate is a catalog entry a chest can produce.
type ItemTemplate struct {
	Name  string      `json:"name" yaml:"name"`
	Slot  domain.Slot `json:"slot" yaml:"slot"`
	Power int         `json:"power" yaml:"power"`
}

// Tier is one rarity band: its draw weight, marketplace fee and catalog.
type Tier struct {
	Rarity         domain.Rarity  `json:"rarity" yaml:"rarity"`
	Weight         int            `json:"weight" yaml:"weight"`
	FeeBasisPoints int            `json:"fee_bps" yaml:"fee_bps"`
	Items          []ItemTemplate `json:"items" yaml:"items"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Table is the loot and fee configuration shared by the loot engine and the
// marketplace.
type Table struct {
	Version               string `json:"version" yaml:"version"`
	Tiers                 []Tier `json:"tiers" yaml:"tiers"`
	TokenBonus            Range  `json:"token_bonus" yaml:"token_bonus"`
	DefaultFeeBasisPoints int    `json:"default_fee_bps" yaml:"default_fee_bps"`
}

// Validate checks the invariants the schema cannot express.
func (t *Table) Validate() error {
	if len(t.Tiers) == 0 {
		return fmt.Errorf("%s", ErrMsgNoTiers)
	}

	total := 0
	seen := make(map[domain.Rarity]struct{}, len(t.Tiers))
	for _, tier := range t.Tiers {
		if !tier.Rarity.Valid() {
			return fmt.Errorf("%s: %q", ErrMsgUnknownRarity, tier.Rarity)
		}
		if _, dup := seen[tier.Rarity]; dup {
			return fmt.Errorf("%s: %s", ErrMsgDuplicateTier, tier.Rarity)
		}
		seen[tier.Rarity] = struct{}{}

		if tier.Weight <= 0 {
			return fmt.Errorf("tier %s: %s", tier.Rarity, ErrMsgNonPositiveWeight)
		}
		if tier.FeeBasisPoints < 0 || tier.FeeBasisPoints > BasisPointsDenominator {
			return fmt.Errorf("tier %s: %s", tier.Rarity, ErrMsgFeeOutOfRange)
		}
		if len(tier.Items) == 0 {
			return fmt.Errorf("tier %s: %s", tier.Rarity, ErrMsgEmptyCatalog)
		}
		for _, tmpl := range tier.Items {
			if strings.TrimSpace(tmpl.Name) == "" {
				return fmt.Errorf("tier %s: %s", tier.Rarity, ErrMsgUnnamedItem)
			}
			if !tmpl.Slot.Valid() {
				return fmt.Errorf("tier %s item %s: unknown slot %q", tier.Rarity, tmpl.Name, tmpl.Slot)
			}
			if tmpl.Power < 0 {
				return fmt.Errorf("tier %s item %s: negative power", tier.Rarity, tmpl.Name)
			}
		}
		total += tier.Weight
	}
	if total != TotalWeight {
		return fmt.Errorf("%s: got %d", ErrMsgWeightSum, total)
	}

	if t.TokenBonus.Min < 0 || t.TokenBonus.Min > t.TokenBonus.Max {
		return fmt.Errorf("%s: [%d, %d]", ErrMsgInvalidBonusRange, t.TokenBonus.Min, t.TokenBonus.Max)
	}
	if t.DefaultFeeBasisPoints < 0 || t.DefaultFeeBasisPoints > BasisPointsDenominator {
		return fmt.Errorf("default fee: %s", ErrMsgFeeOutOfRange)
	}
	return nil
}

// FeeBasisPoints returns the marketplace fee for a rarity, falling back to the
// default for tiers the table does not know.
func (t *Table) FeeBasisPoints(r domain.Rarity) int {
	for _, tier := range t.Tiers {
		if tier.Rarity == r {
			return tier.FeeBasisPoints
		}
	}
	return t.DefaultFeeBasisPoints
}

// Fee is floor(price * fee_rate(rarity)).
func (t *Table) Fee(r domain.Rarity, price int) int {
	if price <= 0 {
		return 0
	}
	bps := t.FeeBasisPoints(r)
	// Split the price so the product never exceeds BasisPointsDenominator squared.
	whole, rem := price/BasisPointsDenominator, price%BasisPointsDenominator
	return whole*bps + rem*bps/BasisPointsDenominator
}

// Tier looks up a band by rarity.
func (t *Table) Tier(r domain.Rarity) (Tier, bool) {
	for _, tier := range t.Tiers {
		if tier.Rarity == r {
			return tier, true
		}
	}
	return Tier{}, false
}

// DefaultTable is the built-in table used when no config file is supplied.
// Weights: common 70, uncommon 23, rare 7. Fees: 2%, 4%, 6%, default 2%.
func DefaultTable() *Table {
	return &Table{
		Version: ConfigVersion,
		Tiers: []Tier{
			{
				Rarity:         domain.RarityCommon,
				Weight:         70,
				FeeBasisPoints: 200,
				Items: []ItemTemplate{
					{Name: "Leather Cap", Slot: domain.SlotHead, Power: 2},
					{Name: "Padded Vest", Slot: domain.SlotBody, Power: 3},
					{Name: "Rusty Dagger", Slot: domain.SlotWeapon, Power: 4},
					{Name: "Cloth Trousers", Slot: domain.SlotLegs, Power: 2},
					{Name: "Copper Ring", Slot: domain.SlotTrinket, Power: 1},
				},
			},
			{
				Rarity:         domain.RarityUncommon,
				Weight:         23,
				FeeBasisPoints: 400,
				Items: []ItemTemplate{
					{Name: "Iron Helm", Slot: domain.SlotHead, Power: 6},
					{Name: "Chainmail", Slot: domain.SlotBody, Power: 8},
					{Name: "Steel Longsword", Slot: domain.SlotWeapon, Power: 10},
					{Name: "Scaled Greaves", Slot: domain.SlotLegs, Power: 6},
					{Name: "Silver Amulet", Slot: domain.SlotTrinket, Power: 5},
				},
			},
			{
				Rarity:         domain.RarityRare,
				Weight:         7,
				FeeBasisPoints: 600,
				Items: []ItemTemplate{
					{Name: "Crown of Aces", Slot: domain.SlotHead, Power: 15},
					{Name: "Dragonscale Plate", Slot: domain.SlotBody, Power: 20},
					{Name: "High Roller's Blade", Slot: domain.SlotWeapon, Power: 25},
					{Name: "Gilded Legplates", Slot: domain.SlotLegs, Power: 15},
					{Name: "Loaded Die", Slot: domain.SlotTrinket, Power: 18},
				},
			},
		},
		TokenBonus:            Range{Min: 10, Max: 30},
		DefaultFeeBasisPoints: 200,
	}
}
