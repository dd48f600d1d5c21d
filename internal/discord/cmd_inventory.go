package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
)

// ChestCommand opens one chest.
func ChestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "chest",
		Description: "Open one of your chests",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			result, err := client.OpenChest(user.ID)
			if err != nil {
				return "", err
			}
			return formatChest(result), nil
		}, ResponseConfig{Title: "📦 Chest Opened", Color: ColorSuccess})
	}

	return cmd, handler
}

// EquipCommand equips an item by its number in /profile.
func EquipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "equip",
		Description: "Equip an item from your collection",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "item",
				Description: "Item number as shown in /profile",
				Required:    true,
				MinValue:    minValue(1),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			position, err := intOption(i, "item")
			if err != nil {
				return "", err
			}
			result, err := client.Equip(user.ID, position)
			if err != nil {
				return "", err
			}
			return formatEquip(result), nil
		}, ResponseConfig{Title: "⚔️ Equipped", Color: ColorSuccess})
	}

	return cmd, handler
}

// slotChoices offers every equipment slot in display order.
func slotChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllSlots))
	for _, slot := range domain.AllSlots {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  titled(string(slot)),
			Value: string(slot),
		})
	}
	return choices
}

// UnequipCommand empties a slot.
func UnequipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "unequip",
		Description: "Take off the item in a slot",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "slot",
				Description: "Equipment slot",
				Required:    true,
				Choices:     slotChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			slot, err := stringOption(i, "slot")
			if err != nil {
				return "", err
			}
			result, err := client.Unequip(user.ID, slot)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Took off **%s** from your %s slot.", result.Item.Name, titled(string(result.Slot))), nil
		}, ResponseConfig{Title: "🧺 Unequipped", Color: ColorInfo})
	}

	return cmd, handler
}
