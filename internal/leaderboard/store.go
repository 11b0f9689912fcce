package leaderboard

import "context"

// Store is the persistence boundary for leaderboard entries. Mutations are
// plain read-modify-write sequences: no locking, no version check, last
// write wins. That weak-consistency model is deliberate.
type Store interface {
	// GetOrCreate loads a user's entry, creating a zero-valued one on
	// first touch (read-through creation).
	GetOrCreate(ctx context.Context, userID string) (*Entry, error)

	// Save persists the entry's counters and derived fields.
	Save(ctx context.Context, e *Entry) error

	// RerankAll re-sorts every entry by rankScore desc (ties: points desc,
	// then rating average desc, then user id asc) and assigns rank 1..N.
	// The full-tie key makes repeated passes deterministic.
	RerankAll(ctx context.Context) error

	// ListAll returns every entry, for bulk recomputation sweeps.
	ListAll(ctx context.Context) ([]*Entry, error)

	// AwardBadge appends a badge once; re-awarding the same badge is a no-op.
	AwardBadge(ctx context.Context, userID string, b Badge) error

	// Top returns the first limit entries of the most recent ranking pass.
	Top(ctx context.Context, limit int) ([]*Entry, error)

	// TopByContribution returns the entries with the highest count for one
	// named contribution column.
	TopByContribution(ctx context.Context, column string, limit int) ([]*Entry, error)

	// Nearby returns the entries ranked within window positions of a user.
	Nearby(ctx context.Context, userID string, window int) ([]*Entry, error)
}
