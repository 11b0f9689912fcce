package leaderboard

// Add folds one rating into the running mean. Values outside [1, 5] are
// rejected without touching the accumulator.
func (r *Rating) Add(value float64) error {
	if value < 1 || value > 5 {
		return ErrInvalidRating
	}
	r.Sum += value
	r.Total++
	r.Average = round2(r.Sum / float64(r.Total))
	return nil
}
