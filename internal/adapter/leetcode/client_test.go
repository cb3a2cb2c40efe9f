package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetcode-discord-bot/internal/domain/model"
)

const dailyPayload = `{
  "data": {
    "activeDailyCodingChallengeQuestion": {
      "date": "2024-03-10",
      "userStatus": "NotStart",
      "link": "/problems/intersection-of-two-arrays/",
      "question": {
        "acRate": 72.456,
        "difficulty": "Easy",
        "frontendQuestionId": "349",
        "paidOnly": false,
        "title": "Intersection of Two Arrays",
        "titleSlug": "intersection-of-two-arrays",
        "content": "<p>Given two integer arrays <code>nums1</code> and <code>nums2</code>.</p>",
        "topicTags": [{"name": "Array"}, {"name": "Hash Table"}]
      }
    }
  }
}`

const monthlyPayload = `{
  "data": {
    "dailyCodingChallengeV2": {
      "challenges": [
        {"date": "2024-03-01", "link": "/problems/a/", "question": {"questionFrontendId": "1", "title": "A", "titleSlug": "a"}}
      ],
      "weeklyChallenges": [
        {"date": "2024-03-01", "link": "/problems/w1/", "question": {"questionFrontendId": "10", "title": "W1", "titleSlug": "w1"}},
        {"date": "2024-03-05", "link": "/problems/w2/", "question": {"questionFrontendId": "20", "title": "W2", "titleSlug": "w2"}}
      ]
    }
  }
}`

type capturedRequest struct {
	Method         string
	Path           string
	ContentType    string
	AcceptEncoding string
	Query          string
	Variables      map[string]any
}

func newGraphQLServer(t *testing.T, status int, encoding string, payload string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if captured != nil {
			*captured = capturedRequest{
				Method:         r.Method,
				Path:           r.URL.Path,
				ContentType:    r.Header.Get("Content-Type"),
				AcceptEncoding: r.Header.Get("Accept-Encoding"),
				Query:          body.Query,
				Variables:      body.Variables,
			}
		}

		encoded := encode(t, encoding, payload)
		w.Header().Set("Content-Type", "application/json")
		if encoding != "" {
			w.Header().Set("Content-Encoding", encoding)
		}
		w.WriteHeader(status)
		_, _ = w.Write(encoded)
	}))
}

func encode(t *testing.T, encoding, payload string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch encoding {
	case "":
		return []byte(payload)
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "br":
		w = brotli.NewWriter(&buf)
	default:
		t.Fatalf("unsupported test encoding %q", encoding)
	}
	_, err := w.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestGetDailyChallenge(t *testing.T) {
	var captured capturedRequest
	server := newGraphQLServer(t, http.StatusOK, "gzip", dailyPayload, &captured)
	defer server.Close()

	client := New(server.URL, time.Second, nil)
	challenge, err := client.GetDailyChallenge(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/graphql/", captured.Path)
	assert.Equal(t, "application/json", captured.ContentType)
	assert.Equal(t, "gzip, deflate, br", captured.AcceptEncoding)
	assert.Contains(t, captured.Query, "activeDailyCodingChallengeQuestion")
	assert.Empty(t, captured.Variables)

	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), challenge.Date)
	assert.Equal(t, "/problems/intersection-of-two-arrays/", challenge.Link)
	assert.Equal(t, "349", challenge.Question.FrontendID)
	assert.Equal(t, "Intersection of Two Arrays", challenge.Question.Title)
	assert.Equal(t, model.DifficultyEasy, challenge.Question.Difficulty)
	assert.InDelta(t, 72.456, challenge.Question.SuccessRate, 1e-9)
	assert.Equal(t, []string{"Array", "Hash Table"}, challenge.Question.Topics)
	assert.Equal(t, "Given two integer arrays nums1 and nums2.", challenge.Question.Content)
}

func TestGetDailyChallengeBrotli(t *testing.T) {
	server := newGraphQLServer(t, http.StatusOK, "br", dailyPayload, nil)
	defer server.Close()

	challenge, err := New(server.URL, 0, nil).GetDailyChallenge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "intersection-of-two-arrays", challenge.Question.TitleSlug)
}

func TestGetDailyChallengeNonOKStatus(t *testing.T) {
	server := newGraphQLServer(t, http.StatusServiceUnavailable, "", "upstream down", nil)
	defer server.Close()

	_, err := New(server.URL, 0, nil).GetDailyChallenge(context.Background())
	require.Error(t, err)

	var fetchErr *model.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Equal(t, "upstream down", fetchErr.Body)
}

func TestGetDailyChallengeMissingData(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "null node", payload: `{"data":{"activeDailyCodingChallengeQuestion":null}}`},
		{name: "null data", payload: `{"data":null}`},
		{name: "graphql errors", payload: `{"data":null,"errors":[{"message":"rate limited"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newGraphQLServer(t, http.StatusOK, "", tt.payload, nil)
			defer server.Close()

			_, err := New(server.URL, 0, nil).GetDailyChallenge(context.Background())
			assert.ErrorIs(t, err, model.ErrMissingData)
		})
	}
}

func TestGetMonthlyChallenges(t *testing.T) {
	var captured capturedRequest
	server := newGraphQLServer(t, http.StatusOK, "gzip", monthlyPayload, &captured)
	defer server.Close()

	monthly, err := New(server.URL+"/", 0, nil).GetMonthlyChallenges(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, "/graphql/", captured.Path)
	assert.Contains(t, captured.Query, "dailyCodingChallengeV2(year: $year, month: $month)")
	assert.Equal(t, map[string]any{"year": float64(2024), "month": float64(3)}, captured.Variables)

	require.Len(t, monthly.Daily, 1)
	require.Len(t, monthly.Weekly, 2)
	assert.Equal(t, "10", monthly.Weekly[0].Question.FrontendID)

	current, ok := monthly.CurrentWeekly()
	require.True(t, ok)
	assert.Equal(t, "W2", current.Question.Title)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), current.Date)
}

func TestGetMonthlyChallengesMissingData(t *testing.T) {
	server := newGraphQLServer(t, http.StatusOK, "", `{"data":{"dailyCodingChallengeV2":null}}`, nil)
	defer server.Close()

	_, err := New(server.URL, 0, nil).GetMonthlyChallenges(context.Background(), 2024, 3)
	assert.ErrorIs(t, err, model.ErrMissingData)
}

func TestGetMonthlyChallengesRejectsBadInput(t *testing.T) {
	_, err := New("http://127.0.0.1:0", 0, nil).GetMonthlyChallenges(context.Background(), 2024, 13)
	assert.ErrorContains(t, err, "invalid month 13")

	server := newGraphQLServer(t, http.StatusOK, "", strings.Replace(monthlyPayload, "2024-03-05", "March 5th", 1), nil)
	defer server.Close()

	_, err = New(server.URL, 0, nil).GetMonthlyChallenges(context.Background(), 2024, 3)
	assert.ErrorContains(t, err, `parse challenge date "March 5th"`)
}
