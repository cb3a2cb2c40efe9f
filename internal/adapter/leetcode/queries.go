package leetcode

const dailyQuery = `
query questionOfToday {
  activeDailyCodingChallengeQuestion {
    date
    userStatus
    link
    question {
      acRate
      difficulty
      freqBar
      frontendQuestionId: questionFrontendId
      isFavor
      paidOnly: isPaidOnly
      status
      title
      titleSlug
      hasVideoSolution
      hasSolution
      content
      topicTags {
        name
        id
        slug
      }
    }
  }
}`

const monthlyQuery = `
query dailyCodingQuestionRecords($year: Int!, $month: Int!) {
  dailyCodingChallengeV2(year: $year, month: $month) {
    challenges {
      date
      userStatus
      link
      question {
        questionFrontendId
        title
        titleSlug
      }
    }
    weeklyChallenges {
      date
      userStatus
      link
      question {
        questionFrontendId
        title
        titleSlug
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type dailyData struct {
	ActiveDailyCodingChallengeQuestion *challengeNode `json:"activeDailyCodingChallengeQuestion"`
}

type monthlyData struct {
	DailyCodingChallengeV2 *struct {
		Challenges       []challengeNode `json:"challenges"`
		WeeklyChallenges []challengeNode `json:"weeklyChallenges"`
	} `json:"dailyCodingChallengeV2"`
}

type challengeNode struct {
	Date       string       `json:"date"`
	UserStatus string       `json:"userStatus"`
	Link       string       `json:"link"`
	Question   questionNode `json:"question"`
}

type questionNode struct {
	ACRate float64 `json:"acRate"`
	// The daily query aliases questionFrontendId, the monthly one does not.
	FrontendQuestionID string `json:"frontendQuestionId"`
	QuestionFrontendID string `json:"questionFrontendId"`
	Difficulty         string `json:"difficulty"`
	PaidOnly           bool   `json:"paidOnly"`
	Title              string `json:"title"`
	TitleSlug          string `json:"titleSlug"`
	Content            string `json:"content"`
	TopicTags          []struct {
		Name string `json:"name"`
	} `json:"topicTags"`
}
