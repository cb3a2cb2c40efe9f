package ports

import (
	"context"

	"leetcode-discord-bot/internal/domain/model"
)

// Notifier delivers notifications to a named chat channel (e.g. Discord).
type Notifier interface {
	// ResolveChannel returns the ID of the first visible channel named name,
	// or model.ErrChannelNotFound.
	ResolveChannel(ctx context.Context, name string) (string, error)
	Deliver(ctx context.Context, channelID string, notification model.Notification) error
}
