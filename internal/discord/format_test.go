package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/handler"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport failure", errors.New("dial tcp: refused"), MsgServerUnavailable},
		{"server failure", &APIError{Status: 500, Message: "Something went wrong"}, MsgGenericError},
		{"mapped with detail", &APIError{Status: 400, Message: domain.ErrMsgNoChestsAvailable}, MsgNoChests},
		{"mapped with suffix", &APIError{Status: 404, Message: domain.ErrMsgInvalidIndex + ": position 9 of 2"}, MsgInvalidPosition},
		{"admin check", &APIError{Status: 403, Message: handler.ErrMsgNotAdmin}, MsgNotAdmin},
		{"unmapped", &APIError{Status: 400, Message: "Price: Must be at least 1"}, "❌ Price: Must be at least 1"},
		{"bad argument", fmt.Errorf("%w: missing item", errBadArgument), "❌ invalid argument: missing item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err))
		})
	}
}

func TestFormatInventory(t *testing.T) {
	assert.Contains(t, formatInventory(nil), "/chest")

	out := formatInventory([]handler.InventoryEntry{
		{Position: 1, Item: domain.Item{Name: "Iron Helm", Slot: domain.SlotHead, Rarity: domain.RarityUncommon, Power: 6}, Equipped: true},
		{Position: 2, Item: domain.Item{Name: "Rusty Dagger", Slot: domain.SlotWeapon, Rarity: domain.RarityCommon, Power: 4}},
	})
	assert.Equal(t,
		"`1.` 🟢 **Iron Helm** (Uncommon Head, power 6) ⚔️\n`2.` ⚪ **Rusty Dagger** (Common Weapon, power 4)",
		out)
}

func TestFormatBuild_ListsEverySlot(t *testing.T) {
	out := formatBuild(map[domain.Slot]*domain.Item{
		domain.SlotWeapon: {Name: "Rusty Dagger", Power: 4},
	})
	assert.Equal(t,
		"**Head:** empty\n**Body:** empty\n**Weapon:** Rusty Dagger (4)\n**Legs:** empty\n**Trinket:** empty",
		out)
}

func TestFormatQueue(t *testing.T) {
	empty := formatQueue(&domain.QueueStatus{Capacity: 5, State: domain.QueueOpen})
	assert.Contains(t, empty, "**0/5**")
	assert.Contains(t, empty, "/join")

	full := formatQueue(&domain.QueueStatus{
		Entries:  []domain.QueueEntry{{Position: 1, DisplayName: "Alice"}, {Position: 2, DisplayName: "Bob"}},
		Size:     2,
		Capacity: 5,
		State:    domain.QueueOpen,
	})
	assert.Contains(t, full, "`1.` Alice")
	assert.Contains(t, full, "`2.` Bob")
}

func TestFormatSettlement_Pluralizes(t *testing.T) {
	out := formatSettlement(&domain.Settlement{
		WinnerName: "Alice",
		Payouts: []domain.Payout{
			{DisplayName: "Alice", Chests: 2},
			{DisplayName: "Bob", Chests: 1},
		},
		TotalChests: 3,
		BuyInPot:    20,
	})
	assert.Contains(t, out, "**Alice** wins!")
	assert.Contains(t, out, "Alice: +2 chests\n")
	assert.Contains(t, out, "Bob: +1 chest\n")
	assert.Contains(t, out, "Chests awarded: 3")
}

func TestFormatEquip_MentionsReplacement(t *testing.T) {
	out := formatEquip(&domain.EquipResult{
		Equipped: domain.Item{Name: "Steel Sword", Slot: domain.SlotWeapon, Rarity: domain.RarityRare, Power: 20},
		Replaced: &domain.Item{Name: "Rusty Dagger"},
	})
	assert.Contains(t, out, "Steel Sword")
	assert.Contains(t, out, "Replaced **Rusty Dagger**")
}
