package leaderboard

import "testing"

func TestClassifyLevelThresholds(t *testing.T) {
	tests := []struct {
		points int
		want   Level
	}{
		{0, LevelBronze},
		{99, LevelBronze},
		{100, LevelSilver},
		{199, LevelSilver},
		{200, LevelGold},
		{299, LevelGold},
		{300, LevelPlatinum},
		{499, LevelPlatinum},
		{500, LevelDiamond},
		{10000, LevelDiamond},
	}

	for _, tt := range tests {
		if got := ClassifyLevel(tt.points); got != tt.want {
			t.Errorf("ClassifyLevel(%d) = %s, want %s", tt.points, got, tt.want)
		}
	}
}

func TestClassifyLevelMonotonic(t *testing.T) {
	prev := ClassifyLevel(0)
	for points := 1; points <= 600; points++ {
		cur := ClassifyLevel(points)
		if cur.Index() < prev.Index() {
			t.Fatalf("level dropped from %s to %s at %d points", prev, cur, points)
		}
		prev = cur
	}
}

func TestLevelIndexOrder(t *testing.T) {
	order := []Level{LevelBronze, LevelSilver, LevelGold, LevelPlatinum, LevelDiamond}
	for i, l := range order {
		if l.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", l, l.Index(), i)
		}
	}
}
