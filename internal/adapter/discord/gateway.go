package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"leetcode-discord-bot/internal/domain/ports"
)

// Intents requested when identifying with the gateway.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

// guildCacheTimeout bounds the wait for guilds that stay unavailable after ready.
const guildCacheTimeout = 30 * time.Second

// Gateway owns the long-lived Discord gateway session.
type Gateway struct {
	session *discordgo.Session
	logger  ports.Logger
}

var _ ports.Gateway = (*Gateway)(nil)

// NewGateway creates a bot session. No connection is made until Open.
func NewGateway(token string, logger ports.Logger) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = Intents
	session.StateEnabled = true

	return &Gateway{session: session, logger: logger}, nil
}

// Session exposes the underlying session to adapters sharing it.
func (g *Gateway) Session() *discordgo.Session {
	return g.session
}

// OnReady registers fn to run once, after the first ready event and the
// guilds it announced have been cached.
func (g *Gateway) OnReady(fn func()) {
	tracker := newReadyTracker(guildCacheTimeout, fn)

	g.session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		username := ""
		if r.User != nil {
			username = r.User.Username
		}
		g.logger.Info(context.Background(), "bot is ready", "user", username, "guilds", len(r.Guilds))

		ids := make([]string, 0, len(r.Guilds))
		for _, guild := range r.Guilds {
			ids = append(ids, guild.ID)
		}
		tracker.ready(ids)
	})
	g.session.AddHandler(func(_ *discordgo.Session, c *discordgo.GuildCreate) {
		tracker.guildCreated(c.ID)
	})
}

// AcknowledgeInteractions defers a reply to every incoming interaction and
// does nothing further.
func (g *Gateway) AcknowledgeInteractions() {
	g.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx := context.Background()
		if err := deferInteraction(s, i.Interaction); err != nil {
			g.logger.Error(ctx, "failed to defer interaction reply", "error", err)
			return
		}
		g.logger.Debug(ctx, "interaction acknowledged", "interaction", i.ID, "type", i.Type.String())
	})
}

// Open connects to the gateway.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	return nil
}

// Close disconnects from the gateway.
func (g *Gateway) Close() error {
	return g.session.Close()
}

type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

func deferInteraction(r interactionResponder, interaction *discordgo.Interaction) error {
	return r.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}
