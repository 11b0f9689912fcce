package leaderboard

import "testing"

func TestComputePointsWeights(t *testing.T) {
	tests := []struct {
		name   string
		c      Contributions
		streak int
		want   int
	}{
		{"empty ledger", Contributions{}, 0, 0},
		{"one accepted mentorship", Contributions{AcceptedMentorships: 1}, 0, 10},
		{"one completed session", Contributions{MentorshipSessions: 1}, 0, 20},
		{"one interview experience", Contributions{InterviewExperiences: 1}, 0, 15},
		{"one resource", Contributions{ResourcesShared: 1}, 0, 10},
		{"one mock interview", Contributions{MockInterviews: 1}, 0, 25},
		{"one five star rating", Contributions{FiveStarRatings: 1}, 0, 10},
		{"one company insight", Contributions{CompanyInsights: 1}, 0, 15},
		{"one answered question", Contributions{QuestionsAnswered: 1}, 0, 5},
		{"one helpful rating", Contributions{HelpfulRatings: 1}, 0, 2},
		{"missed request penalty", Contributions{AcceptedMentorships: 1, MissedRequests: 1}, 0, 5},
		{
			"mixed ledger",
			Contributions{AcceptedMentorships: 2, MentorshipSessions: 1, ResourcesShared: 3},
			0,
			70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePoints(tt.c, tt.streak); got != tt.want {
				t.Errorf("ComputePoints() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputePointsStreakBonus(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 0},
		{6, 0},
		{7, 5},
		{13, 5},
		{14, 10},
		{70, 50},
	}

	for _, tt := range tests {
		if got := ComputePoints(Contributions{}, tt.streak); got != tt.want {
			t.Errorf("streak %d: ComputePoints() = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestComputePointsClampedAtZero(t *testing.T) {
	// A pile of missed requests alone must not drive points negative.
	c := Contributions{MissedRequests: 100}
	if got := ComputePoints(c, 0); got != 0 {
		t.Errorf("ComputePoints() = %d, want 0", got)
	}

	// The penalty still erodes positive points before the clamp kicks in.
	c = Contributions{AcceptedMentorships: 1, MissedRequests: 1}
	if got := ComputePoints(c, 0); got != 5 {
		t.Errorf("ComputePoints() = %d, want 5", got)
	}
}

func TestComputePointsDeterministic(t *testing.T) {
	c := Contributions{
		AcceptedMentorships:  3,
		MentorshipSessions:   2,
		InterviewExperiences: 1,
		MissedRequests:       2,
	}
	first := ComputePoints(c, 9)
	for i := 0; i < 10; i++ {
		if got := ComputePoints(c, 9); got != first {
			t.Fatalf("ComputePoints() not deterministic: %d != %d", got, first)
		}
	}
}
