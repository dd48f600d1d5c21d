package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// JoinCommand takes a seat in the tournament queue.
func JoinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "join",
		Description: "Take a seat at the tournament table",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			result, err := client.JoinTournament(user.ID)
			if err != nil {
				return "", err
			}
			msg := fmt.Sprintf("You took seat **%d**. Seats filled: %d/%d.", result.Position, result.Size, result.Capacity)
			if result.Size == result.Capacity {
				msg += "\nThe table is full and waiting for a result."
			}
			return msg, nil
		}, ResponseConfig{Title: "🎲 Joined", Color: ColorTourney})
	}

	return cmd, handler
}

// QueueCommand shows the current table.
func QueueCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "queue",
		Description: "See who is seated at the tournament table",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(_ *discordgo.User) (string, error) {
			status, err := client.TournamentStatus()
			if err != nil {
				return "", err
			}
			return formatQueue(status), nil
		}, ResponseConfig{Title: "🎲 Tournament Table", Color: ColorTourney, Footer: FooterCashPool})
	}

	return cmd, handler
}

// ResolveCommand settles the tournament for a winner. The API rejects
// callers that are not configured administrators.
func ResolveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	perms := int64(discordgo.PermissionManageServer)
	cmd := &discordgo.ApplicationCommand{
		Name:                     "resolve",
		Description:              "Declare the tournament winner (admin)",
		DefaultMemberPermissions: &perms,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "winner",
				Description: "The seated player who won",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, func(user *discordgo.User) (string, error) {
			winnerID, err := userOption(i, "winner")
			if err != nil {
				return "", err
			}
			settlement, err := client.ResolveTournament(user.ID, winnerID)
			if err != nil {
				return "", err
			}
			return formatSettlement(settlement), nil
		}, ResponseConfig{Title: "🏆 Tournament Resolved", Color: ColorAdmin, Footer: FooterCashPoolAdmin})
	}

	return cmd, handler
}
