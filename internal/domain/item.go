package domain

import (
	"fmt"
	"strings"
)

// Item is a piece of gear produced by opening a chest.
// Items never change after creation; only their owner does.
type Item struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slot   Slot   `json:"slot"`
	Rarity Rarity `json:"rarity"`
	Power  int    `json:"power"`
}

// Slot is an equipment position on a player.
type Slot string

const (
	SlotHead    Slot = "head"
	SlotBody    Slot = "body"
	SlotWeapon  Slot = "weapon"
	SlotLegs    Slot = "legs"
	SlotTrinket Slot = "trinket"
)

// AllSlots lists the slots in display order.
var AllSlots = []Slot{SlotHead, SlotBody, SlotWeapon, SlotLegs, SlotTrinket}

// Valid reports whether s is one of the known slots.
func (s Slot) Valid() bool {
	for _, known := range AllSlots {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSlot normalizes user input into a Slot.
func ParseSlot(raw string) (Slot, error) {
	s := Slot(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, raw)
	}
	return s, nil
}

// Rarity is an ordered loot tier: common < uncommon < rare.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// AllRarities lists the tiers from lowest to highest.
var AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare}

// Rank returns the tier's position in AllRarities, or -1 for an unknown tier.
func (r Rarity) Rank() int {
	for i, known := range AllRarities {
		if r == known {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool {
	return r.Rank() >= 0
}

// Validate checks the fields a persisted item must carry.
func (i Item) Validate() error {
	if i.ID <= 0 {
		return fmt.Errorf("item id %d must be positive", i.ID)
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item %d has no name", i.ID)
	}
	if !i.Slot.Valid() {
		return fmt.Errorf("item %d has unknown slot %q", i.ID, i.Slot)
	}
	if !i.Rarity.Valid() {
		return fmt.Errorf("item %d has unknown rarity %q", i.ID, i.Rarity)
	}
	if i.Power < 0 {
		return fmt.Errorf("item %d has negative power %d", i.ID, i.Power)
	}
	return nil
}
