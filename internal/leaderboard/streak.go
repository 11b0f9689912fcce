package leaderboard

import "time"

// Record advances the streak for an activity happening at now. Calendar
// days only; time of day is ignored. Same-day calls are idempotent, a
// one-day gap extends the streak, anything longer restarts it at 1.
// A negative gap (clock skew, out-of-order events) is ignored.
func (s *Streak) Record(now time.Time) {
	day := dateOf(now)

	if s.LastActivityDate == nil {
		s.Current = 1
		if s.Longest < 1 {
			s.Longest = 1
		}
		s.LastActivityDate = &day
		return
	}

	last := dateOf(*s.LastActivityDate)
	gap := int(day.Sub(last) / (24 * time.Hour))

	switch {
	case gap == 0:
		// already counted today
	case gap == 1:
		s.Current++
		if s.Current > s.Longest {
			s.Longest = s.Current
		}
		s.LastActivityDate = &day
	case gap > 1:
		s.Current = 1
		s.LastActivityDate = &day
	default:
		// gap < 0: out-of-order timestamp, leave the streak alone
	}
}

// dateOf truncates to UTC midnight so day arithmetic is exact across
// timezones and DST shifts.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
