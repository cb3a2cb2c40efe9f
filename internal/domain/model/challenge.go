package model

import "time"

// Difficulty is the difficulty label LeetCode attaches to a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Question represents a LeetCode question as returned for the current run.
type Question struct {
	FrontendID  string
	Title       string
	TitleSlug   string
	Difficulty  Difficulty
	SuccessRate float64
	Content     string
	Topics      []string
	PaidOnly    bool
}

// Challenge is a dated challenge record pointing at a question.
type Challenge struct {
	Date     time.Time
	Link     string
	Question Question
}

// MonthlyChallenges holds the challenge records of one calendar month,
// ordered by ascending date as returned by the API.
type MonthlyChallenges struct {
	Daily  []Challenge
	Weekly []Challenge
}

// CurrentWeekly returns the chronologically last weekly challenge.
func (m *MonthlyChallenges) CurrentWeekly() (Challenge, bool) {
	if m == nil || len(m.Weekly) == 0 {
		return Challenge{}, false
	}
	return m.Weekly[len(m.Weekly)-1], true
}
