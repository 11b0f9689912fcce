package leaderboard

import "math"

// Rank score weighting: 70% activity points, 30% rating. The rating is
// rescaled by 20 so a perfect 5.0 average is worth 30 score points and
// cannot dominate (or vanish next to) activity volume.
const (
	pointsWeight  = 0.7
	ratingWeight  = 0.3
	ratingRescale = 20
)

// ComputeRankScore combines total points and average rating into the
// comparison key used to order the global leaderboard.
func ComputeRankScore(points int, avgRating float64) float64 {
	return round2(float64(points)*pointsWeight + avgRating*ratingRescale*ratingWeight)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
