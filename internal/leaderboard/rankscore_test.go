package leaderboard

import "testing"

func TestComputeRankScore(t *testing.T) {
	tests := []struct {
		name   string
		points int
		avg    float64
		want   float64
	}{
		{"zero entry", 0, 0, 0},
		{"points only", 100, 0, 70},
		{"rating only", 0, 5, 30},
		{"weighted mix", 300, 4.5, 237},
		{"rounded to cents", 1, 0, 0.7},
		{"fractional average", 42, 5, 59.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeRankScore(tt.points, tt.avg); got != tt.want {
				t.Errorf("ComputeRankScore(%d, %v) = %v, want %v", tt.points, tt.avg, got, tt.want)
			}
		})
	}
}
