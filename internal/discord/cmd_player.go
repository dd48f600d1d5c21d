package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// StartCommand registers the caller.
func StartCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "start",
		Description: "Create your CashPool profile",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			p, err := client.RegisterPlayer(user.ID, displayName(i))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Welcome, **%s**!\nTokens: %d | Chests: %d | Items: %d\nWin tournaments with /join to earn chests.",
				p.DisplayName, p.Tokens, p.Chests, p.ItemCount), nil
		}, ResponseConfig{Title: "🎲 CashPool RPG", Color: ColorInfo})
	}

	return cmd, handler
}

// ProfileCommand shows the caller's collection, build and power.
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your items, equipment and power",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		user := getInteractionUser(i)
		if user == nil {
			respondError(s, i, MsgGenericError)
			return
		}
		if err := client.EnsureRegistered(user.ID, displayName(i)); err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		profile, err := client.GetProfile(user.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed(fmt.Sprintf("%s's Profile", profile.DisplayName), formatInventory(profile.Items), ColorInfo, "")
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")}
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Tokens", Value: fmt.Sprintf("%d", profile.Tokens), Inline: true},
			{Name: "Chests", Value: fmt.Sprintf("%d", profile.Chests), Inline: true},
			{Name: "Power", Value: fmt.Sprintf("%d", profile.TotalPower), Inline: true},
			{Name: "Equipment", Value: formatBuild(profile.Equipped)},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// CoinsCommand shows token and chest balances.
func CoinsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "coins",
		Description: "Check your token and chest balance",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			profile, err := client.GetProfile(user.ID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("💰 **%d** tokens\n📦 **%d** chests", profile.Tokens, profile.Chests), nil
		}, ResponseConfig{Title: "Balance", Color: ColorInfo})
	}

	return cmd, handler
}
