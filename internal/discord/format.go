package discord

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/handler"
)

var titleCaser = cases.Title(language.English)

var rarityEmoji = map[domain.Rarity]string{
	domain.RarityCommon:   "⚪",
	domain.RarityUncommon: "🟢",
	domain.RarityRare:     "🟣",
}

// titled renders a slot or rarity key for display ("trinket" -> "Trinket").
func titled(s string) string {
	return titleCaser.String(s)
}

// formatItem renders one item on a single line.
func formatItem(it domain.Item) string {
	return fmt.Sprintf("%s **%s** (%s %s, power %d)",
		rarityEmoji[it.Rarity], it.Name, titled(string(it.Rarity)), titled(string(it.Slot)), it.Power)
}

func formatInventory(items []handler.InventoryEntry) string {
	if len(items) == 0 {
		return "Your collection is empty. Open a chest with /chest."
	}
	var sb strings.Builder
	for _, entry := range items {
		marker := ""
		if entry.Equipped {
			marker = " ⚔️"
		}
		fmt.Fprintf(&sb, "`%d.` %s%s\n", entry.Position, formatItem(entry.Item), marker)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatBuild(equipped map[domain.Slot]*domain.Item) string {
	var sb strings.Builder
	for _, slot := range domain.AllSlots {
		it := equipped[slot]
		if it == nil {
			fmt.Fprintf(&sb, "**%s:** empty\n", titled(string(slot)))
			continue
		}
		fmt.Fprintf(&sb, "**%s:** %s (%d)\n", titled(string(slot)), it.Name, it.Power)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatMarket(listings []handler.ListingView) string {
	if len(listings) == 0 {
		return "The market is empty. List something with /sell."
	}
	var sb strings.Builder
	for _, l := range listings {
		fmt.Fprintf(&sb, "`%d.` %s for **%d** tokens, sold by %s\n", l.Number, formatItem(l.Item), l.Price, l.SellerName)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatChest(r *domain.ChestResult) string {
	return fmt.Sprintf("You found %s\n+%d tokens (balance %d). Chests left: %d",
		formatItem(r.Item), r.TokenBonus, r.Tokens, r.ChestsRemaining)
}

func formatEquip(r *domain.EquipResult) string {
	msg := fmt.Sprintf("Equipped %s", formatItem(r.Equipped))
	if r.Replaced != nil {
		msg += fmt.Sprintf("\nReplaced **%s**, which stays in your collection.", r.Replaced.Name)
	}
	return msg
}

func formatSale(s *domain.Sale) string {
	return fmt.Sprintf("You bought %s for **%d** tokens from %s.\nThe seller received %d after a %d token fee.",
		formatItem(s.Item), s.Price, s.Listing.SellerName, s.SellerNet, s.Fee)
}

func formatQueue(q *domain.QueueStatus) string {
	header := fmt.Sprintf("Seats: **%d/%d** (%s)", q.Size, q.Capacity, q.State)
	if len(q.Entries) == 0 {
		return header + "\nNobody is seated. Use /join."
	}
	var sb strings.Builder
	sb.WriteString(header)
	for _, e := range q.Entries {
		fmt.Fprintf(&sb, "\n`%d.` %s", e.Position, e.DisplayName)
	}
	return sb.String()
}

func formatSettlement(s *domain.Settlement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 **%s** wins!\n", s.WinnerName)
	for _, p := range s.Payouts {
		fmt.Fprintf(&sb, "%s: +%d chest", p.DisplayName, p.Chests)
		if p.Chests != 1 {
			sb.WriteString("s")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Chests awarded: %d. Buy-in pot recorded: %d.", s.TotalChests, s.BuyInPot)
	return sb.String()
}

// friendlyByMessage maps specific API messages to chat wording.
var friendlyByMessage = map[string]string{
	domain.ErrMsgInsufficientFunds: MsgInsufficientFunds,
	domain.ErrMsgNoChestsAvailable: MsgNoChests,
	domain.ErrMsgSelfPurchase:      MsgSelfPurchase,
	domain.ErrMsgNotListingOwner:   MsgNotListingOwner,
	domain.ErrMsgInvalidPrice:      MsgInvalidPrice,
	domain.ErrMsgListingNotFound:   MsgListingGone,
	domain.ErrMsgInvalidIndex:      MsgInvalidPosition,
	domain.ErrMsgSlotEmpty:         MsgSlotEmpty,
	domain.ErrMsgInvalidSlot:       MsgInvalidSlot,
	domain.ErrMsgPlayerNotFound:    MsgPlayerNotFound,
	domain.ErrMsgAlreadyQueued:     MsgAlreadyQueued,
	domain.ErrMsgQueueFull:         MsgQueueFull,
	domain.ErrMsgEmptyQueue:        MsgEmptyQueue,
	domain.ErrMsgPlayerNotQueued:   MsgPlayerNotQueued,
	handler.ErrMsgNotAdmin:         MsgNotAdmin,
}

// formatFriendlyError turns an API failure into a chat reply. Messages are
// matched by prefix since the API may append detail after a colon.
func formatFriendlyError(err error) string {
	if errors.Is(err, errBadArgument) {
		return "❌ " + err.Error()
	}
	if errors.Is(err, errOutcomeUnknown) {
		return MsgOutcomeUnknown
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgServerUnavailable
	}
	if apiErr.Status >= 500 {
		return MsgGenericError
	}
	for prefix, friendly := range friendlyByMessage {
		if strings.HasPrefix(apiErr.Message, prefix) {
			return friendly
		}
	}
	return "❌ " + apiErr.Message
}
