package leaderboard

import (
	"fmt"
	"time"
)

// Contributions holds the per-user counters of tracked events. All values
// stay non-negative; missedRequests counts up but weighs negatively.
type Contributions struct {
	AcceptedMentorships  int `json:"acceptedMentorships"`
	MentorshipSessions   int `json:"mentorshipSessions"`
	InterviewExperiences int `json:"interviewExperiences"`
	ResourcesShared      int `json:"resourcesShared"`
	MockInterviews       int `json:"mockInterviews"`
	FiveStarRatings      int `json:"fiveStarRatings"`
	CompanyInsights      int `json:"companyInsights"`
	QuestionsAnswered    int `json:"questionsAnswered"`
	HelpfulRatings       int `json:"helpfulRatings"`
	MissedRequests       int `json:"missedRequests"`
}

// Apply increments the single counter matching the activity tag.
func (c *Contributions) Apply(a Activity) error {
	switch a {
	case AcceptMentorship:
		c.AcceptedMentorships++
	case CompleteMentorship:
		c.MentorshipSessions++
	case UploadInterview:
		c.InterviewExperiences++
	case ShareResource:
		c.ResourcesShared++
	case ConductWorkshop:
		c.MockInterviews++
	case ShareInsight:
		c.CompanyInsights++
	case AnswerQuestion:
		c.QuestionsAnswered++
	case MissedRequest:
		c.MissedRequests++
	default:
		return fmt.Errorf("%w: %q", ErrUnknownActivity, a)
	}
	return nil
}

// Rating is the running mean of 1-5 star ratings received by a user.
type Rating struct {
	Sum     float64 `json:"sum"`
	Total   int     `json:"total"`
	Average float64 `json:"average"`
}

// Streak tracks consecutive calendar days with at least one activity.
type Streak struct {
	Current          int        `json:"current"`
	Longest          int        `json:"longest"`
	LastActivityDate *time.Time `json:"lastActivityDate,omitempty"`
}

type Badge struct {
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Entry is one user's leaderboard record. Points, Level and RankScore are
// derived from the counters and never written directly; Rank is only
// meaningful relative to the most recent global recalculation pass.
type Entry struct {
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName,omitempty"`
	Avatar        string        `json:"avatar,omitempty"`
	Contributions Contributions `json:"contributions"`
	Rating        Rating        `json:"rating"`
	Streak        Streak        `json:"streak"`
	Points        int           `json:"points"`
	Level         Level         `json:"level"`
	RankScore     float64       `json:"rankScore"`
	Rank          int           `json:"rank"`
	Badges        []Badge       `json:"badges,omitempty"`
}
