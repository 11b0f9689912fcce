package leaderboard

import (
	"errors"
	"testing"
)

func TestRatingAdd(t *testing.T) {
	var r Rating

	if err := r.Add(5); err != nil {
		t.Fatalf("Add(5): %v", err)
	}
	if err := r.Add(1); err != nil {
		t.Fatalf("Add(1): %v", err)
	}

	if r.Total != 2 {
		t.Errorf("Total = %d, want 2", r.Total)
	}
	if r.Average != 3.0 {
		t.Errorf("Average = %v, want 3.0", r.Average)
	}
	if r.Sum != 6 {
		t.Errorf("Sum = %v, want 6", r.Sum)
	}
}

func TestRatingAddRoundsAverage(t *testing.T) {
	var r Rating
	for _, v := range []float64{5, 4, 4} {
		if err := r.Add(v); err != nil {
			t.Fatalf("Add(%v): %v", v, err)
		}
	}
	// 13/3 = 4.333... rounds to 4.33
	if r.Average != 4.33 {
		t.Errorf("Average = %v, want 4.33", r.Average)
	}
}

func TestRatingAddRejectsOutOfRange(t *testing.T) {
	r := Rating{Sum: 8, Total: 2, Average: 4}

	for _, v := range []float64{0, 6, -1, 5.5} {
		err := r.Add(v)
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Add(%v) error = %v, want ErrInvalidRating", v, err)
		}
	}

	// A rejected rating must leave the accumulator untouched.
	if r.Sum != 8 || r.Total != 2 || r.Average != 4 {
		t.Errorf("accumulator mutated by rejected rating: %+v", r)
	}
}
