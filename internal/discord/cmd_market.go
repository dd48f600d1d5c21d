package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MarketCommand lists every open listing.
func MarketCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "market",
		Description: "Browse items for sale",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(_ *discordgo.User) (string, error) {
			listings, err := client.BrowseMarket()
			if err != nil {
				return "", err
			}
			return formatMarket(listings), nil
		}, ResponseConfig{Title: "🏪 Marketplace", Color: ColorMarket, Footer: FooterCashPool})
	}

	return cmd, handler
}

// SellCommand lists an owned item for a token price.
func SellCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "sell",
		Description: "List one of your items on the market",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "item",
				Description: "Item number as shown in /profile",
				Required:    true,
				MinValue:    minValue(1),
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "price",
				Description: "Asking price in tokens",
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
			price, err := intOption(i, "price")
			if err != nil {
				return "", err
			}
			listing, err := client.ListItem(user.ID, position, price)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Listed %s for **%d** tokens as listing `%d`.",
				formatItem(listing.Item), listing.Price, listing.Number), nil
		}, ResponseConfig{Title: "🏷️ Listed", Color: ColorMarket})
	}

	return cmd, handler
}

// BuyCommand purchases a listing by its number in /market.
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy an item from the market",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "listing",
				Description: "Listing number as shown in /market",
				Required:    true,
				MinValue:    minValue(1),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			number, err := intOption(i, "listing")
			if err != nil {
				return "", err
			}
			sale, err := client.BuyListing(user.ID, number)
			if err != nil {
				return "", err
			}
			return formatSale(sale), nil
		}, ResponseConfig{Title: "🛒 Purchase Complete", Color: ColorSuccess})
	}

	return cmd, handler
}

// UnlistCommand withdraws the caller's own listing.
func UnlistCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "unlist",
		Description: "Take one of your listings off the market",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "listing",
				Description: "Listing number as shown in /market",
				Required:    true,
				MinValue:    minValue(1),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			number, err := intOption(i, "listing")
			if err != nil {
				return "", err
			}
			listing, err := client.CancelListing(user.ID, number)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("**%s** is back in your collection.", listing.Item.Name), nil
		}, ResponseConfig{Title: "↩️ Listing Cancelled", Color: ColorMarket})
	}

	return cmd, handler
}
