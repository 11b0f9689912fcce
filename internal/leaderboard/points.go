package leaderboard

// ComputePoints maps the full counter set plus the current streak to a
// total point value. The result is clamped at zero: missed-request
// penalties can never drive points negative.
func ComputePoints(c Contributions, streakCurrent int) int {
	raw := c.AcceptedMentorships*PointsAcceptedMentorship +
		c.MentorshipSessions*PointsMentorshipSession +
		c.InterviewExperiences*PointsInterviewExperience +
		c.ResourcesShared*PointsResourceShared +
		c.MockInterviews*PointsMockInterview +
		c.FiveStarRatings*PointsFiveStarRating +
		c.CompanyInsights*PointsCompanyInsight +
		c.QuestionsAnswered*PointsQuestionAnswered +
		c.HelpfulRatings*PointsHelpfulRating +
		c.MissedRequests*PointsMissedRequest

	raw += (streakCurrent / StreakBonusDays) * StreakBonusValue

	if raw < 0 {
		return 0
	}
	return raw
}
