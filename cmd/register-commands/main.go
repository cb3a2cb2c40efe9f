package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"leetcode-discord-bot/internal/di"
	"leetcode-discord-bot/internal/domain/model"
)

func main() {
	var target di.CommandTarget

	rootCmd := &cobra.Command{
		Use:   "register-commands",
		Short: "Register the bot's slash commands for a guild",
		Long: `register-commands replaces every guild-scoped slash command of the
application with the bot's command list. Running it again is harmless.

APP_ID, GUILD_ID and DISCORD_TOKEN are read from the environment or a .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registrar, err := di.InitializeCommandRegistrar(target)
			if err != nil {
				return fmt.Errorf("initialize registrar: %w", err)
			}
			return registrar.Register(cmd.Context(), model.DefaultCommands())
		},
	}

	rootCmd.Flags().StringVar(&target.AppID, "app-id", "", "Application ID (overrides APP_ID)")
	rootCmd.Flags().StringVar(&target.GuildID, "guild-id", "", "Guild ID (overrides GUILD_ID)")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
