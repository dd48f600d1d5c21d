package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Registry *CommandRegistry

	forceCommandUpdate bool
}

// Config holds the bot configuration
type Config struct {
	Token              string
	AppID              string
	APIURL             string
	APIKey             string
	ForceCommandUpdate bool
}

// New creates a bot with every slash command registered.
func New(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("discord token is required")
	}
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	registry := NewCommandRegistry()
	registry.RegisterAll(AllCommands())

	return &Bot{
		Session:            s,
		Client:             NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:              cfg.AppID,
		Registry:           registry,
		forceCommandUpdate: cfg.ForceCommandUpdate,
	}, nil
}

// Start opens the gateway connection and syncs slash commands.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if err := b.RegisterCommands(b.Registry, b.forceCommandUpdate); err != nil {
		_ = b.Session.Close()
		return err
	}

	slog.Info("Discord bot is now running", "commands", len(b.Registry.Commands))
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Error closing Discord session", "error", err)
	}
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	return nil
}

// Connected reports whether the gateway session is ready.
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
