package ports

import (
	"context"

	"leetcode-discord-bot/internal/domain/model"
)

// CommandRegistrar replaces the full set of guild commands.
type CommandRegistrar interface {
	Register(ctx context.Context, commands []model.SlashCommand) error
}
