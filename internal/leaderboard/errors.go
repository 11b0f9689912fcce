package leaderboard

import "errors"

var (
	// ErrInvalidRating is returned when a rating value falls outside [1, 5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrUnknownActivity is returned when an activity tag is not in the
	// recognized set. This is a caller bug, rejected before any mutation.
	ErrUnknownActivity = errors.New("unknown activity")

	// ErrUnknownContribution is returned when a top-by-contribution query
	// names a counter that does not exist.
	ErrUnknownContribution = errors.New("unknown contribution type")
)
