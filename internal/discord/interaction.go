package discord

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// errBadArgument marks a malformed slash command argument.
var errBadArgument = errors.New("invalid argument")

// deferResponse acknowledges the interaction so slow API calls do not time out.
// Returns false if Discord rejected the acknowledgement.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// respondError replaces the deferred reply with a plain message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError logs err and replies with its chat wording.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// sendEmbed sends an embed message with standardized error handling.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed; an empty footerText uses FooterCashPool.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterCashPool
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title  string
	Color  int
	Footer string
}

// handleEmbedResponse defers the reply, registers the caller, runs action
// and sends its text as an embed. Failures become friendly replies.
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	client *APIClient,
	action func(user *discordgo.User) (string, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	user := getInteractionUser(i)
	if user == nil {
		respondError(s, i, MsgGenericError)
		return
	}
	if err := client.EnsureRegistered(user.ID, displayName(i)); err != nil {
		slog.Error("Failed to register player", "error", err, "user_id", user.ID)
		respondFriendlyError(s, i, err)
		return
	}

	msg, err := action(user)
	if err != nil {
		slog.Warn("Command failed", "title", config.Title, "error", err, "user_id", user.ID)
		respondFriendlyError(s, i, err)
		return
	}

	sendEmbed(s, i, createEmbed(config.Title, msg, config.Color, config.Footer))
}

// getInteractionUser returns the invoking user for guild and DM interactions.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// displayName prefers the guild nickname, then the global name, then the username.
func displayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	user := getInteractionUser(i)
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

func findOption(i *discordgo.InteractionCreate, name string) (*discordgo.ApplicationCommandInteractionDataOption, error) {
	for _, opt := range getOptions(i) {
		if opt.Name == name {
			return opt, nil
		}
	}
	return nil, fmt.Errorf("%w: missing %s", errBadArgument, name)
}

func intOption(i *discordgo.InteractionCreate, name string) (int, error) {
	opt, err := findOption(i, name)
	if err != nil {
		return 0, err
	}
	return int(opt.IntValue()), nil
}

func stringOption(i *discordgo.InteractionCreate, name string) (string, error) {
	opt, err := findOption(i, name)
	if err != nil {
		return "", err
	}
	return opt.StringValue(), nil
}

// userOption returns the id of a user-typed option. Only the raw value is
// read, so no session state lookup is needed.
func userOption(i *discordgo.InteractionCreate, name string) (string, error) {
	opt, err := findOption(i, name)
	if err != nil {
		return "", err
	}
	id, ok := opt.Value.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: missing %s", errBadArgument, name)
	}
	return id, nil
}

func minValue(v float64) *float64 {
	return &v
}
