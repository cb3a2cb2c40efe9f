package ports

import (
	"context"

	"leetcode-discord-bot/internal/domain/model"
)

// ChallengeProvider defines access to LeetCode challenge records.
type ChallengeProvider interface {
	GetDailyChallenge(ctx context.Context) (*model.Challenge, error)
	GetMonthlyChallenges(ctx context.Context, year, month int) (*model.MonthlyChallenges, error)
}
