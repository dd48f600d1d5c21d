package domain

import (
	"fmt"
	"strings"
)

// Player is a registered participant's economy profile, keyed by the
// identity of the chat platform they play from.
type Player struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"display_name"`
	Tokens      int          `json:"tokens"`
	Chests      int          `json:"chests"`
	Items       []Item       `json:"items"`
	Equipment   map[Slot]int `json:"equipment"`
}

// NewPlayer returns a zero-balance profile.
func NewPlayer(id, displayName string) *Player {
	return &Player{
		ID:          id,
		DisplayName: displayName,
		Items:       []Item{},
		Equipment:   map[Slot]int{},
	}
}

// NextItemID is one greater than the highest item id the player holds, or 1.
func (p *Player) NextItemID() int {
	highest := 0
	for _, item := range p.Items {
		if item.ID > highest {
			highest = item.ID
		}
	}
	return highest + 1
}

// ItemByID finds an item in the collection.
func (p *Player) ItemByID(id int) (Item, bool) {
	for _, item := range p.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Equipped returns the item occupying slot, if any.
func (p *Player) Equipped(slot Slot) (Item, bool) {
	id, ok := p.Equipment[slot]
	if !ok {
		return Item{}, false
	}
	return p.ItemByID(id)
}

// EquippedItems maps each occupied slot to its item.
func (p *Player) EquippedItems() map[Slot]Item {
	out := make(map[Slot]Item, len(p.Equipment))
	for slot := range p.Equipment {
		if item, ok := p.Equipped(slot); ok {
			out[slot] = item
		}
	}
	return out
}

// TotalPower sums power over equipped items only.
func (p *Player) TotalPower() int {
	total := 0
	for _, item := range p.EquippedItems() {
		total += item.Power
	}
	return total
}

// AddItem appends item to the collection. If its id collides with one the
// player already holds, it is renumbered to NextItemID; the other fields are kept.
func (p *Player) AddItem(item Item) Item {
	if _, taken := p.ItemByID(item.ID); taken || item.ID <= 0 {
		item.ID = p.NextItemID()
	}
	p.Items = append(p.Items, item)
	return item
}

// RemoveItemAt takes the item at index out of the collection and clears any
// slot that referenced it.
func (p *Player) RemoveItemAt(index int) (Item, error) {
	if index < 0 || index >= len(p.Items) {
		return Item{}, fmt.Errorf("%w: position %d of %d", ErrInvalidIndex, index+1, len(p.Items))
	}
	item := p.Items[index]
	p.Items = append(p.Items[:index:index], p.Items[index+1:]...)
	for slot, id := range p.Equipment {
		if id == item.ID {
			delete(p.Equipment, slot)
		}
	}
	return item, nil
}

// Clone returns a deep copy, so callers can mutate freely before persisting.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Items = make([]Item, len(p.Items))
	copy(cp.Items, p.Items)
	cp.Equipment = make(map[Slot]int, len(p.Equipment))
	for k, v := range p.Equipment {
		cp.Equipment[k] = v
	}
	return &cp
}

// Normalize fills nil collections left by decoding sparse documents.
func (p *Player) Normalize() {
	if p.Items == nil {
		p.Items = []Item{}
	}
	if p.Equipment == nil {
		p.Equipment = map[Slot]int{}
	}
}

// Validate enforces the profile invariants. Stores call it on every document
// they read so malformed data is rejected before reaching business logic.
func (p *Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player has empty id")
	}
	if p.Tokens < 0 {
		return fmt.Errorf("player %s has negative token balance %d", p.ID, p.Tokens)
	}
	if p.Chests < 0 {
		return fmt.Errorf("player %s has negative chest count %d", p.ID, p.Chests)
	}
	seen := make(map[int]struct{}, len(p.Items))
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("player %s: %w", p.ID, err)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("player %s holds duplicate item id %d", p.ID, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	for slot, id := range p.Equipment {
		if !slot.Valid() {
			return fmt.Errorf("player %s has unknown equipment slot %q", p.ID, slot)
		}
		item, ok := p.ItemByID(id)
		if !ok {
			return fmt.Errorf("player %s equips missing item %d in %s", p.ID, id, slot)
		}
		if item.Slot != slot {
			return fmt.Errorf("player %s equips %s item %d in %s", p.ID, item.Slot, id, slot)
		}
	}
	return nil
}
