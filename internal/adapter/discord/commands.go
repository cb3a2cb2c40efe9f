package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"leetcode-discord-bot/internal/domain/model"
	"leetcode-discord-bot/internal/domain/ports"
)

type commandOverwriter interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// CommandRegistrar replaces a guild's slash commands through the REST API.
type CommandRegistrar struct {
	api     commandOverwriter
	appID   string
	guildID string
	logger  ports.Logger
}

var _ ports.CommandRegistrar = (*CommandRegistrar)(nil)

// NewCommandRegistrar creates a REST-only session for the given application and guild.
func NewCommandRegistrar(token, appID, guildID string, logger ports.Logger) (*CommandRegistrar, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &CommandRegistrar{
		api:     session,
		appID:   appID,
		guildID: guildID,
		logger:  logger,
	}, nil
}

// Register overwrites the guild's command list with commands. Commands not in
// the list are removed; running it twice leaves the same state.
func (r *CommandRegistrar) Register(ctx context.Context, commands []model.SlashCommand) error {
	payload := make([]*discordgo.ApplicationCommand, 0, len(commands))
	for _, cmd := range commands {
		payload = append(payload, &discordgo.ApplicationCommand{
			Type:        discordgo.ChatApplicationCommand,
			Name:        cmd.Name,
			Description: cmd.Description,
		})
	}

	registered, err := r.api.ApplicationCommandBulkOverwrite(r.appID, r.guildID, payload, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("overwrite guild commands: %w", err)
	}

	r.logger.Info(ctx, "successfully registered application commands", "guild", r.guildID, "count", len(registered))
	return nil
}
