package leaderboard

// Activity tags the contribution events the platform tracks. Controllers
// dispatch exactly one tag per business action.
type Activity string

const (
	AcceptMentorship   Activity = "ACCEPT_MENTORSHIP"
	CompleteMentorship Activity = "COMPLETE_MENTORSHIP"
	UploadInterview    Activity = "UPLOAD_INTERVIEW"
	ShareResource      Activity = "SHARE_RESOURCE"
	ConductWorkshop    Activity = "CONDUCT_WORKSHOP"
	ShareInsight       Activity = "SHARE_INSIGHT"
	AnswerQuestion     Activity = "ANSWER_QUESTION"
	MissedRequest      Activity = "MISSED_REQUEST"
)

func (a Activity) valid() bool {
	switch a {
	case AcceptMentorship, CompleteMentorship, UploadInterview, ShareResource,
		ConductWorkshop, ShareInsight, AnswerQuestion, MissedRequest:
		return true
	}
	return false
}

// Point weights per contribution. Points are always recomputed from the
// full counter set, never incremented deltawise.
const (
	PointsAcceptedMentorship  = 10
	PointsMentorshipSession   = 20
	PointsInterviewExperience = 15
	PointsResourceShared      = 10
	PointsMockInterview       = 25
	PointsFiveStarRating      = 10
	PointsCompanyInsight      = 15
	PointsQuestionAnswered    = 5
	PointsHelpfulRating       = 2
	PointsMissedRequest       = -5
)

// Streak bonus: one unit per 7 consecutive days of activity.
const (
	StreakBonusDays  = 7
	StreakBonusValue = 5
)

// Contributions column names accepted by the top-by-contribution read API.
var contributionColumns = map[string]string{
	"acceptedMentorships":  "accepted_mentorships",
	"mentorshipSessions":   "mentorship_sessions",
	"interviewExperiences": "interview_experiences",
	"resourcesShared":      "resources_shared",
	"mockInterviews":       "mock_interviews",
	"fiveStarRatings":      "five_star_ratings",
	"companyInsights":      "company_insights",
	"questionsAnswered":    "questions_answered",
	"helpfulRatings":       "helpful_ratings",
	"missedRequests":       "missed_requests",
}
