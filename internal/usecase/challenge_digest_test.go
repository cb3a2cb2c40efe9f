package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetcode-discord-bot/internal/domain/model"
)

type fakeProvider struct {
	daily      *model.Challenge
	dailyErr   error
	monthly    *model.MonthlyChallenges
	monthlyErr error

	monthlyCalls []int
}

func (f *fakeProvider) GetDailyChallenge(context.Context) (*model.Challenge, error) {
	return f.daily, f.dailyErr
}

func (f *fakeProvider) GetMonthlyChallenges(_ context.Context, year, month int) (*model.MonthlyChallenges, error) {
	f.monthlyCalls = append(f.monthlyCalls, year, month)
	return f.monthly, f.monthlyErr
}

type fakeNotifier struct {
	channels   map[string]string
	resolved   []string
	delivered  []model.Notification
	deliverErr map[string]error
}

func (f *fakeNotifier) ResolveChannel(_ context.Context, name string) (string, error) {
	f.resolved = append(f.resolved, name)
	id, ok := f.channels[name]
	if !ok {
		return "", model.ErrChannelNotFound
	}
	return id, nil
}

func (f *fakeNotifier) Deliver(_ context.Context, channelID string, n model.Notification) error {
	if channelID == "" {
		return errors.New("empty channel id")
	}
	f.delivered = append(f.delivered, n)
	return f.deliverErr[n.Headline]
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, string, ...any) {}
func (nopLogger) Error(context.Context, string, ...any) {}

func newDigest(provider *fakeProvider, notifier *fakeNotifier) *ChallengeDigest {
	return NewChallengeDigest(
		provider,
		NewChallengeProjector("https://leetcode.com"),
		notifier,
		nopLogger{},
		ChallengeDigestConfig{
			ChannelName: "leetcode",
			Now:         func() time.Time { return date(2024, time.March, 10) },
		},
	)
}

func happyProvider() *fakeProvider {
	return &fakeProvider{
		daily: sampleDaily(),
		monthly: &model.MonthlyChallenges{
			Weekly: []model.Challenge{weeklyRecord("2100", "Current", date(2024, time.March, 5))},
		},
	}
}

func TestRunDeliversDailyThenWeekly(t *testing.T) {
	provider := happyProvider()
	notifier := &fakeNotifier{channels: map[string]string{"leetcode": "42"}}

	require.NoError(t, newDigest(provider, notifier).Run(context.Background()))

	assert.Equal(t, []int{2024, 3}, provider.monthlyCalls)
	assert.Equal(t, []string{"leetcode"}, notifier.resolved)
	require.Len(t, notifier.delivered, 2)
	assert.Equal(t, "**Leetcode Daily**", notifier.delivered[0].Headline)
	assert.Equal(t, "**Leetcode Weekly**", notifier.delivered[1].Headline)
	assert.Equal(t, "2 days", notifier.delivered[1].Fields[0].Value)
}

func TestRunAbortsBeforeLookupWhenDailyMissing(t *testing.T) {
	provider := happyProvider()
	provider.daily = nil
	provider.dailyErr = model.ErrMissingData
	notifier := &fakeNotifier{channels: map[string]string{"leetcode": "42"}}

	err := newDigest(provider, notifier).Run(context.Background())

	assert.ErrorIs(t, err, model.ErrMissingData)
	assert.Empty(t, notifier.resolved)
	assert.Empty(t, notifier.delivered)
	// the weekly fetch is still attempted so both failures are logged
	assert.Equal(t, []int{2024, 3}, provider.monthlyCalls)
}

func TestRunAbortsOnDailyFetchError(t *testing.T) {
	provider := happyProvider()
	provider.daily = nil
	provider.dailyErr = &model.FetchError{StatusCode: 502}
	notifier := &fakeNotifier{channels: map[string]string{"leetcode": "42"}}

	err := newDigest(provider, notifier).Run(context.Background())

	var fetchErr *model.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 502, fetchErr.StatusCode)
	assert.Empty(t, notifier.delivered)
}

// A failed weekly fetch used to be logged and then dereferenced anyway,
// crashing the handler. It now aborts the run with nothing sent, including
// the daily message whose data was available.
func TestRunAbortsWhenWeeklyFetchFails(t *testing.T) {
	provider := happyProvider()
	provider.monthly = nil
	provider.monthlyErr = &model.FetchError{StatusCode: 429}
	notifier := &fakeNotifier{channels: map[string]string{"leetcode": "42"}}

	err := newDigest(provider, notifier).Run(context.Background())

	require.Error(t, err)
	assert.Empty(t, notifier.resolved)
	assert.Empty(t, notifier.delivered)
}

func TestRunAbortsWhenNoWeeklyChallenges(t *testing.T) {
	provider := happyProvider()
	provider.monthly = &model.MonthlyChallenges{}
	notifier := &fakeNotifier{channels: map[string]string{"leetcode": "42"}}

	err := newDigest(provider, notifier).Run(context.Background())

	assert.ErrorIs(t, err, model.ErrMissingData)
	assert.Empty(t, notifier.delivered)
}

func TestRunSendsNothingWhenChannelNotFound(t *testing.T) {
	notifier := &fakeNotifier{channels: map[string]string{"general": "1"}}

	err := newDigest(happyProvider(), notifier).Run(context.Background())

	assert.ErrorIs(t, err, model.ErrChannelNotFound)
	assert.Equal(t, []string{"leetcode"}, notifier.resolved)
	assert.Empty(t, notifier.delivered)
}

func TestRunAttemptsWeeklyAfterDailySendFails(t *testing.T) {
	sendErr := errors.New("missing permissions")
	notifier := &fakeNotifier{
		channels:   map[string]string{"leetcode": "42"},
		deliverErr: map[string]error{"**Leetcode Daily**": sendErr},
	}

	err := newDigest(happyProvider(), notifier).Run(context.Background())

	assert.ErrorIs(t, err, sendErr)
	require.Len(t, notifier.delivered, 2)
	assert.Equal(t, "**Leetcode Weekly**", notifier.delivered[1].Headline)
}
