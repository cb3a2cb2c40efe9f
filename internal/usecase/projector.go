package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"leetcode-discord-bot/internal/domain/model"
)

const (
	dailyHeadline  = "**Leetcode Daily**"
	weeklyHeadline = "**Leetcode Weekly**"
	weeklyFooter   = "Time to code 🔥👨‍💻🔥"

	dailyColor  = 0x00FFFF
	weeklyColor = 0xFFBF00

	// A weekly challenge stays open for seven days from its start date.
	weeklyWindow = 7 * 24 * time.Hour
	day          = 24 * time.Hour

	descriptionLimit = 300
)

// ChallengeProjector turns raw challenge records into presentation messages.
// It holds no state between calls.
type ChallengeProjector struct {
	baseURL string
}

// NewChallengeProjector builds a projector that resolves relative links against baseURL.
func NewChallengeProjector(baseURL string) *ChallengeProjector {
	return &ChallengeProjector{baseURL: strings.TrimRight(baseURL, "/")}
}

// Project builds the daily and weekly notifications. It fails with
// model.ErrMissingData when either input is absent or the month has no
// weekly challenge.
func (p *ChallengeProjector) Project(daily *model.Challenge, monthly *model.MonthlyChallenges, now time.Time) (model.Notification, model.Notification, error) {
	if daily == nil {
		return model.Notification{}, model.Notification{}, fmt.Errorf("daily challenge: %w", model.ErrMissingData)
	}
	weekly, ok := monthly.CurrentWeekly()
	if !ok {
		return model.Notification{}, model.Notification{}, fmt.Errorf("weekly challenge: %w", model.ErrMissingData)
	}

	return p.projectDaily(*daily), p.projectWeekly(weekly, now), nil
}

func (p *ChallengeProjector) projectDaily(c model.Challenge) model.Notification {
	return model.Notification{
		Headline:    dailyHeadline,
		Title:       challengeTitle(c.Question),
		URL:         p.baseURL + c.Link,
		Description: summarizeText(c.Question.Content, descriptionLimit),
		Color:       dailyColor,
		Fields: []model.NotificationField{
			{Name: "Difficulty", Value: codeBlock(string(c.Question.Difficulty)), Inline: true},
			{Name: "Success rate", Value: codeBlock(FormatSuccessRate(c.Question.SuccessRate)), Inline: true},
		},
	}
}

func (p *ChallengeProjector) projectWeekly(c model.Challenge, now time.Time) model.Notification {
	changeDate := c.Date.Add(weeklyWindow)
	return model.Notification{
		Headline: weeklyHeadline,
		Title:    challengeTitle(c.Question),
		URL:      p.baseURL + c.Link,
		Color:    weeklyColor,
		Fields: []model.NotificationField{
			{Name: "Remaining time", Value: FormatRemaining(RemainingDays(changeDate, now)), Inline: false},
		},
		Footer: weeklyFooter,
	}
}

// RemainingDays returns the whole number of days between now and changeDate,
// rounded to the nearest day. The distance is absolute: a changeDate in the
// past still reports how far away it is.
func RemainingDays(changeDate, now time.Time) int {
	return int(math.Round(math.Abs(float64(changeDate.Sub(now)) / float64(day))))
}

// FormatRemaining renders a day count, singular below two.
func FormatRemaining(days int) string {
	if days < 2 {
		return strconv.Itoa(days) + " day"
	}
	return strconv.Itoa(days) + " days"
}

// FormatSuccessRate renders an acceptance rate with exactly two decimals.
func FormatSuccessRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64)
}

func challengeTitle(q model.Question) string {
	return fmt.Sprintf("%s. %s", q.FrontendID, q.Title)
}

func codeBlock(value string) string {
	return "```" + value + "\n```"
}

func summarizeText(content string, limit int) string {
	clean := strings.Join(strings.Fields(content), " ")
	if len(clean) <= limit {
		return clean
	}

	trimmed := clean[:limit]
	if lastSpace := strings.LastIndex(trimmed, " "); lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}
	return trimmed + "..."
}
