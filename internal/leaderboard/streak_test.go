package leaderboard

import (
	"testing"
	"time"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 14, 30, 0, 0, time.UTC)
}

func TestStreakFirstActivity(t *testing.T) {
	var s Streak
	s.Record(day(2026, 3, 10))

	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
	if s.Longest != 1 {
		t.Errorf("Longest = %d, want 1", s.Longest)
	}
	if s.LastActivityDate == nil {
		t.Fatal("LastActivityDate not set")
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	var s Streak
	s.Record(day(2026, 3, 10))
	s.Record(day(2026, 3, 11))
	s.Record(day(2026, 3, 12))

	if s.Current != 3 {
		t.Errorf("Current = %d, want 3", s.Current)
	}
	if s.Longest != 3 {
		t.Errorf("Longest = %d, want 3", s.Longest)
	}
}

func TestStreakSameDayIdempotent(t *testing.T) {
	var s Streak
	s.Record(day(2026, 3, 10))
	s.Record(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC))

	if s.Current != 1 {
		t.Errorf("Current = %d, want 1 after same-day repeat", s.Current)
	}
}

func TestStreakBreakRestartsAtOne(t *testing.T) {
	var s Streak
	s.Record(day(2026, 3, 10))
	s.Record(day(2026, 3, 11))
	s.Record(day(2026, 3, 16)) // 5-day gap

	if s.Current != 1 {
		t.Errorf("Current = %d, want 1 after break", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("Longest = %d, want 2 (watermark survives the break)", s.Longest)
	}
}

func TestStreakIgnoresOutOfOrderTimestamps(t *testing.T) {
	var s Streak
	s.Record(day(2026, 3, 10))
	s.Record(day(2026, 3, 11))
	s.Record(day(2026, 3, 9)) // clock skew

	if s.Current != 2 {
		t.Errorf("Current = %d, want 2 (negative gap is a no-op)", s.Current)
	}
	if got := dateOf(*s.LastActivityDate); !got.Equal(dateOf(day(2026, 3, 11))) {
		t.Errorf("LastActivityDate moved backwards to %v", got)
	}
}

func TestStreakTimeOfDayIgnored(t *testing.T) {
	var s Streak
	s.Record(time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC))
	s.Record(time.Date(2026, 3, 11, 0, 5, 0, 0, time.UTC))

	if s.Current != 2 {
		t.Errorf("Current = %d, want 2 across midnight", s.Current)
	}
}
