package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leetcode-discord-bot/internal/domain/model"
	"leetcode-discord-bot/internal/domain/ports"
)

// ChallengeDigest fetches the daily and weekly challenges and posts them to a channel.
type ChallengeDigest struct {
	challenges  ports.ChallengeProvider
	projector   *ChallengeProjector
	notifier    ports.Notifier
	logger      ports.Logger
	channelName string
	now         func() time.Time
}

// ChallengeDigestConfig controls where and when the digest is posted.
type ChallengeDigestConfig struct {
	ChannelName string
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewChallengeDigest constructs a ChallengeDigest use case.
func NewChallengeDigest(
	challenges ports.ChallengeProvider,
	projector *ChallengeProjector,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg ChallengeDigestConfig,
) *ChallengeDigest {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &ChallengeDigest{
		challenges:  challenges,
		projector:   projector,
		notifier:    notifier,
		logger:      logger,
		channelName: cfg.ChannelName,
		now:         now,
	}
}

// Run executes one notification run. Any fetch, projection or channel lookup
// failure aborts the run before anything is sent. The two sends are
// independent: a failed daily message does not prevent the weekly one.
func (d *ChallengeDigest) Run(ctx context.Context) error {
	start := d.now()
	d.logger.Info(ctx, "starting challenge digest")

	daily, dailyErr := d.challenges.GetDailyChallenge(ctx)
	if dailyErr != nil {
		d.logger.Error(ctx, "failed to fetch daily challenge", "error", dailyErr, "status", statusOf(dailyErr))
	}

	year, month := start.Year(), int(start.Month())
	monthly, weeklyErr := d.challenges.GetMonthlyChallenges(ctx, year, month)
	if weeklyErr != nil {
		d.logger.Error(ctx, "failed to fetch weekly challenges", "error", weeklyErr, "status", statusOf(weeklyErr), "year", year, "month", month)
	}

	if err := errors.Join(dailyErr, weeklyErr); err != nil {
		return fmt.Errorf("fetch challenges: %w", err)
	}

	dailyMsg, weeklyMsg, err := d.projector.Project(daily, monthly, start)
	if err != nil {
		d.logger.Error(ctx, "failed to build messages", "error", err)
		return err
	}

	channelID, err := d.notifier.ResolveChannel(ctx, d.channelName)
	if err != nil {
		d.logger.Error(ctx, "could not find discord channel", "channel", d.channelName, "error", err)
		return err
	}

	var sendErrs []error
	for _, msg := range []model.Notification{dailyMsg, weeklyMsg} {
		if err := d.notifier.Deliver(ctx, channelID, msg); err != nil {
			d.logger.Error(ctx, "failed to send notification", "headline", msg.Headline, "error", err)
			sendErrs = append(sendErrs, fmt.Errorf("send %q: %w", msg.Headline, err))
		}
	}
	if err := errors.Join(sendErrs...); err != nil {
		return err
	}

	d.logger.Info(ctx, "challenge digest completed", "channel", d.channelName, "duration", d.now().Sub(start))
	return nil
}

func statusOf(err error) int {
	var fetchErr *model.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return 0
}
