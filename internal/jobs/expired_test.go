package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
)

// memRequests mimics the pending->expired transition: requests returned by
// one scan are gone for all later scans.
type memRequests struct {
	pending map[string]time.Time // alumni id -> request creation time
	err     error
}

func (m *memRequests) ExpirePending(_ context.Context, cutoff time.Time) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var alumni []string
	for id, createdAt := range m.pending {
		if createdAt.Before(cutoff) {
			alumni = append(alumni, id)
			delete(m.pending, id)
		}
	}
	return alumni, nil
}

func TestScannerPenalizesStaleRequestsOnce(t *testing.T) {
	ctx := context.Background()
	board := leaderboard.NewService(leaderboard.NewMemoryStore())

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	requests := &memRequests{pending: map[string]time.Time{
		"slow-alumni":  now.Add(-4 * 24 * time.Hour), // stale
		"fresh-alumni": now.Add(-1 * 24 * time.Hour), // still within the window
	}}

	scanner := NewExpiredRequestScanner(requests, board, 3)
	scanner.now = func() time.Time { return now }

	require.NoError(t, scanner.RunOnce(ctx))

	slow, err := board.EntryFor(ctx, "slow-alumni")
	require.NoError(t, err)
	require.Equal(t, 1, slow.Contributions.MissedRequests)

	// The fresh request was not touched, so its alumni has no entry yet.
	fresh, err := board.EntryFor(ctx, "fresh-alumni")
	require.NoError(t, err)
	require.Equal(t, 0, fresh.Contributions.MissedRequests)

	// Re-running the scan must not re-penalize: the request already left
	// the pending state.
	require.NoError(t, scanner.RunOnce(ctx))
	slow, err = board.EntryFor(ctx, "slow-alumni")
	require.NoError(t, err)
	require.Equal(t, 1, slow.Contributions.MissedRequests)
}

func TestScannerPropagatesStoreErrors(t *testing.T) {
	board := leaderboard.NewService(leaderboard.NewMemoryStore())
	requests := &memRequests{err: errors.New("connection refused")}

	scanner := NewExpiredRequestScanner(requests, board, 3)
	require.Error(t, scanner.RunOnce(context.Background()))
}

func TestNextMidnight(t *testing.T) {
	now := time.Date(2026, 5, 10, 17, 45, 12, 0, time.UTC)
	got := nextMidnight(now)
	want := time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)
	require.True(t, got.Equal(want), "nextMidnight(%v) = %v, want %v", now, got, want)

	// Month rollover
	now = time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC)
	got = nextMidnight(now)
	want = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.True(t, got.Equal(want), "nextMidnight(%v) = %v, want %v", now, got, want)
}
