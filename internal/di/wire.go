//go:build wireinject

package di

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/wire"

	"leetcode-discord-bot/internal/adapter/discord"
	"leetcode-discord-bot/internal/adapter/leetcode"
	"leetcode-discord-bot/internal/adapter/logging"
	"leetcode-discord-bot/internal/app"
	"leetcode-discord-bot/internal/config"
	"leetcode-discord-bot/internal/domain/ports"
	"leetcode-discord-bot/internal/usecase"
)

// CommandTarget overrides the application and guild the commands are registered for.
type CommandTarget struct {
	AppID   string
	GuildID string
}

var loggingSet = wire.NewSet(
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		loggingSet,
		provideChallengeClient,
		wire.Bind(new(ports.ChallengeProvider), new(*leetcode.Client)),
		provideProjector,
		provideGateway,
		wire.Bind(new(ports.Gateway), new(*discord.Gateway)),
		provideNotifier,
		provideDigestConfig,
		usecase.NewChallengeDigest,
		wire.Bind(new(app.Runner), new(*usecase.ChallengeDigest)),
		provideAppOptions,
		app.New,
	)
	return nil, nil
}

// InitializeCommandRegistrar wires the slash-command registration utility.
func InitializeCommandRegistrar(target CommandTarget) (*discord.CommandRegistrar, error) {
	wire.Build(
		config.Load,
		loggingSet,
		provideCommandRegistrar,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return slog.New(logging.NewHandler(os.Stdout, cfg.LogFormat, cfg.LogLevel))
}

func provideChallengeClient(cfg *config.Config, logger ports.Logger) *leetcode.Client {
	return leetcode.New(cfg.LeetCodeBaseURL, cfg.RequestTimeout, logger)
}

func provideProjector(client *leetcode.Client) *usecase.ChallengeProjector {
	return usecase.NewChallengeProjector(client.BaseURL())
}

func provideGateway(cfg *config.Config, logger ports.Logger) (*discord.Gateway, error) {
	if missing := cfg.Missing(); len(missing) > 0 {
		logger.Warn(context.Background(), "configuration values are not set", "missing", missing)
	}
	return discord.NewGateway(cfg.DiscordToken, logger)
}

func provideNotifier(gateway *discord.Gateway, logger ports.Logger) ports.Notifier {
	return discord.NewNotifier(gateway.Session(), logger)
}

func provideDigestConfig(cfg *config.Config) usecase.ChallengeDigestConfig {
	return usecase.ChallengeDigestConfig{
		ChannelName: cfg.ChannelName,
	}
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{ExitAfterRun: cfg.ExitAfterRun}
}

func provideCommandRegistrar(cfg *config.Config, target CommandTarget, logger ports.Logger) (*discord.CommandRegistrar, error) {
	if target.AppID != "" {
		cfg.AppID = target.AppID
	}
	if target.GuildID != "" {
		cfg.GuildID = target.GuildID
	}
	if err := cfg.RequireCommandRegistration(); err != nil {
		return nil, err
	}
	return discord.NewCommandRegistrar(cfg.DiscordToken, cfg.AppID, cfg.GuildID, logger)
}
