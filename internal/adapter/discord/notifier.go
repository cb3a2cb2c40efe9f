package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"leetcode-discord-bot/internal/domain/model"
	"leetcode-discord-bot/internal/domain/ports"
)

// Discord message and embed limits, in characters.
const (
	maxContent     = 2000
	maxTitle       = 256
	maxDescription = 4096
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxFooter      = 2048
	maxFields      = 25
)

type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts notifications as embeds into channels of the session's guilds.
type Notifier struct {
	state  *discordgo.State
	sender messageSender
	logger ports.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier bound to a gateway session and its channel cache.
func NewNotifier(session *discordgo.Session, logger ports.Logger) *Notifier {
	return &Notifier{
		state:  session.State,
		sender: session,
		logger: logger,
	}
}

// ResolveChannel scans the cached channels of every guild the bot is in and
// returns the first one named exactly name.
func (n *Notifier) ResolveChannel(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if n.state == nil {
		return "", fmt.Errorf("resolve %q: session state disabled: %w", name, model.ErrChannelNotFound)
	}

	n.state.RLock()
	defer n.state.RUnlock()

	for _, guild := range n.state.Guilds {
		for _, channel := range guild.Channels {
			if channel.Name == name {
				n.logger.Debug(ctx, "resolved discord channel", "channel", name, "id", channel.ID, "guild", guild.ID)
				return channel.ID, nil
			}
		}
	}

	return "", fmt.Errorf("resolve %q: %w", name, model.ErrChannelNotFound)
}

// Deliver posts the notification's headline and embed to channelID.
func (n *Notifier) Deliver(ctx context.Context, channelID string, notification model.Notification) error {
	if channelID == "" {
		return fmt.Errorf("channel ID is empty")
	}

	msg := &discordgo.MessageSend{
		Content: truncate(notification.Headline, maxContent),
		Embeds:  []*discordgo.MessageEmbed{toEmbed(notification)},
	}

	if _, err := n.sender.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send discord message: %w", err)
	}

	n.logger.Info(ctx, "notification sent to discord", "channel", channelID, "title", notification.Title)
	return nil
}

func toEmbed(notification model.Notification) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       truncate(notification.Title, maxTitle),
		URL:         notification.URL,
		Description: truncate(notification.Description, maxDescription),
		Color:       notification.Color,
		Fields:      convertFields(notification.Fields),
	}
	if notification.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: truncate(notification.Footer, maxFooter)}
	}
	return embed
}

func convertFields(fields []model.NotificationField) []*discordgo.MessageEmbedField {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}

	result := make([]*discordgo.MessageEmbedField, 0, len(fields))
	for _, field := range fields {
		result = append(result, &discordgo.MessageEmbedField{
			Name:   truncate(field.Name, maxFieldName),
			Value:  truncate(field.Value, maxFieldValue),
			Inline: field.Inline,
		})
	}
	return result
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
