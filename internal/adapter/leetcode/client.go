package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leetcode-discord-bot/internal/domain/model"
	"leetcode-discord-bot/internal/domain/ports"
)

const (
	// DefaultBaseURL is the public LeetCode site.
	DefaultBaseURL = "https://leetcode.com"
	graphQLPath    = "/graphql/"
	dateLayout     = "2006-01-02"
)

// Client implements ports.ChallengeProvider using the LeetCode GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ports.Logger
}

var _ ports.ChallengeProvider = (*Client)(nil)

// New creates a new LeetCode client. A zero timeout waits indefinitely.
func New(baseURL string, timeout time.Duration, logger ports.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// BaseURL returns the site root that challenge links are relative to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetDailyChallenge retrieves today's daily coding challenge.
func (c *Client) GetDailyChallenge(ctx context.Context) (*model.Challenge, error) {
	var resp graphQLResponse[dailyData]
	if err := c.query(ctx, "questionOfToday", dailyQuery, map[string]any{}, &resp); err != nil {
		return nil, err
	}
	if err := checkGraphQLErrors(resp.Errors, resp.Data == nil); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.ActiveDailyCodingChallengeQuestion == nil {
		return nil, fmt.Errorf("activeDailyCodingChallengeQuestion: %w", model.ErrMissingData)
	}

	challenge, err := toChallenge(*resp.Data.ActiveDailyCodingChallengeQuestion)
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// GetMonthlyChallenges retrieves the daily and weekly challenge records of a
// calendar month. month is 1-indexed.
func (c *Client) GetMonthlyChallenges(ctx context.Context, year, month int) (*model.MonthlyChallenges, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	variables := map[string]any{"year": year, "month": month}
	var resp graphQLResponse[monthlyData]
	if err := c.query(ctx, "dailyCodingQuestionRecords", monthlyQuery, variables, &resp); err != nil {
		return nil, err
	}
	if err := checkGraphQLErrors(resp.Errors, resp.Data == nil); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.DailyCodingChallengeV2 == nil {
		return nil, fmt.Errorf("dailyCodingChallengeV2: %w", model.ErrMissingData)
	}

	records := resp.Data.DailyCodingChallengeV2
	daily, err := toChallenges(records.Challenges)
	if err != nil {
		return nil, err
	}
	weekly, err := toChallenges(records.WeeklyChallenges)
	if err != nil {
		return nil, err
	}

	return &model.MonthlyChallenges{Daily: daily, Weekly: weekly}, nil
}

func (c *Client) query(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+graphQLPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("Referer", c.baseURL)

	if c.logger != nil {
		c.logger.Debug(ctx, "calling leetcode graphql", "operation", operation, "variables", variables)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	reader, err := decodeBody(resp.Body, resp.Header.Get("Content-Encoding"))
	if resp.StatusCode != http.StatusOK {
		fetchErr := &model.FetchError{StatusCode: resp.StatusCode}
		if err == nil {
			data, _ := io.ReadAll(io.LimitReader(reader, 1024))
			fetchErr.Body = strings.TrimSpace(string(data))
			reader.Close()
		}
		return fetchErr
	}
	if err != nil {
		return err
	}
	defer reader.Close()

	if err := json.NewDecoder(reader).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkGraphQLErrors turns a GraphQL errors array into ErrMissingData when no data came back.
func checkGraphQLErrors(errs []graphQLError, noData bool) error {
	if len(errs) == 0 || !noData {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return fmt.Errorf("graphql errors: %s: %w", strings.Join(messages, "; "), model.ErrMissingData)
}

func toChallenges(nodes []challengeNode) ([]model.Challenge, error) {
	challenges := make([]model.Challenge, 0, len(nodes))
	for _, node := range nodes {
		challenge, err := toChallenge(node)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, challenge)
	}
	return challenges, nil
}

func toChallenge(node challengeNode) (model.Challenge, error) {
	date, err := time.Parse(dateLayout, node.Date)
	if err != nil {
		return model.Challenge{}, fmt.Errorf("parse challenge date %q: %w", node.Date, err)
	}

	q := node.Question
	frontendID := q.FrontendQuestionID
	if frontendID == "" {
		frontendID = q.QuestionFrontendID
	}

	topics := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		topics = append(topics, tag.Name)
	}

	return model.Challenge{
		Date: date,
		Link: node.Link,
		Question: model.Question{
			FrontendID:  frontendID,
			Title:       q.Title,
			TitleSlug:   q.TitleSlug,
			Difficulty:  model.Difficulty(q.Difficulty),
			SuccessRate: q.ACRate,
			Content:     strings.TrimSpace(htmlToText(q.Content)),
			Topics:      topics,
			PaidOnly:    q.PaidOnly,
		},
	}, nil
}
