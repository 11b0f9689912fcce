package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// failingStore wraps a Store and fails Save for one user.
type failingStore struct {
	Store
	failUser string
}

func (f *failingStore) Save(ctx context.Context, e *Entry) error {
	if e.UserID == f.failUser {
		return errors.New("simulated save failure")
	}
	return f.Store.Save(ctx, e)
}

func newTestService(store Store, at time.Time) *Service {
	svc := NewService(store)
	svc.now = func() time.Time { return at }
	return svc
}

func TestTrackActivityEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryStore(), day(2026, 4, 1))

	// Fresh alumni: accept a mentorship, complete it, receive a 5-star rating.
	require.NoError(t, svc.TrackActivity(ctx, "alice", AcceptMentorship))
	require.NoError(t, svc.TrackActivity(ctx, "alice", CompleteMentorship))
	require.NoError(t, svc.AddRating(ctx, "alice", 5))

	e, err := svc.EntryFor(ctx, "alice")
	require.NoError(t, err)

	require.Equal(t, 1, e.Contributions.AcceptedMentorships)
	require.Equal(t, 1, e.Contributions.MentorshipSessions)
	require.Equal(t, 1, e.Contributions.FiveStarRatings)
	require.Equal(t, 1, e.Contributions.HelpfulRatings)

	// 10 + 20 + 10 + 2
	require.Equal(t, 42, e.Points)
	require.Equal(t, LevelBronze, e.Level)
	require.Equal(t, 5.0, e.Rating.Average)
	require.Equal(t, 59.4, e.RankScore) // 42*0.7 + 5*20*0.3
	require.Equal(t, 1, e.Rank)
	require.Equal(t, 1, e.Streak.Current)
}

func TestTrackActivityRejectsUnknownTag(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := newTestService(store, day(2026, 4, 1))

	err := svc.TrackActivity(ctx, "alice", Activity("DO_SOMETHING"))
	require.ErrorIs(t, err, ErrUnknownActivity)

	// Rejected before any mutation: no entry was created.
	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestTrackActivityStreakAcrossDays(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryStore(), day(2026, 4, 1))

	require.NoError(t, svc.TrackActivity(ctx, "alice", ShareResource))

	svc.now = func() time.Time { return day(2026, 4, 2) }
	require.NoError(t, svc.TrackActivity(ctx, "alice", AnswerQuestion))

	e, err := svc.EntryFor(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, e.Streak.Current)
	require.Equal(t, 2, e.Streak.Longest)
}

func TestMissedRequestCannotGoNegative(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryStore(), day(2026, 4, 1))

	require.NoError(t, svc.TrackActivity(ctx, "bob", MissedRequest))

	e, err := svc.EntryFor(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, 1, e.Contributions.MissedRequests)
	require.Equal(t, 0, e.Points)
}

func TestAddRatingRejectsOutOfRange(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := newTestService(store, day(2026, 4, 1))

	require.ErrorIs(t, svc.AddRating(ctx, "alice", 0), ErrInvalidRating)
	require.ErrorIs(t, svc.AddRating(ctx, "alice", 6), ErrInvalidRating)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestAddRatingBelowFiveStillCountsHelpful(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryStore(), day(2026, 4, 1))

	require.NoError(t, svc.AddRating(ctx, "alice", 3))

	e, err := svc.EntryFor(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 0, e.Contributions.FiveStarRatings)
	require.Equal(t, 1, e.Contributions.HelpfulRatings)
	require.Equal(t, 3.0, e.Rating.Average)
	require.Equal(t, 2, e.Points)
}

func TestRerankOrdersByScoreAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := newTestService(store, day(2026, 4, 1))

	require.NoError(t, svc.TrackActivity(ctx, "low", AnswerQuestion))     // 5 pts
	require.NoError(t, svc.TrackActivity(ctx, "mid", CompleteMentorship)) // 20 pts
	require.NoError(t, svc.TrackActivity(ctx, "high", ConductWorkshop))   // 25 pts

	top, err := svc.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "high", top[0].UserID)
	require.Equal(t, "mid", top[1].UserID)
	require.Equal(t, "low", top[2].UserID)
	require.Equal(t, []int{1, 2, 3}, []int{top[0].Rank, top[1].Rank, top[2].Rank})

	// Re-ranking with no intervening mutation changes nothing.
	require.NoError(t, store.RerankAll(ctx))
	again, err := svc.Top(ctx, 10)
	require.NoError(t, err)
	for i := range top {
		require.Equal(t, top[i].UserID, again[i].UserID)
		require.Equal(t, top[i].Rank, again[i].Rank)
	}
}

func TestRerankDeterministicUnderFullTies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := newTestService(store, day(2026, 4, 1))

	// Lazily created entries all tie at zero score, zero points, zero
	// average. The ranking must still come out identical on every pass.
	for i := 0; i < 30; i++ {
		_, err := svc.EntryFor(ctx, fmt.Sprintf("user-%02d", i))
		require.NoError(t, err)
	}

	require.NoError(t, store.RerankAll(ctx))
	first := rankByUser(t, ctx, svc)

	for pass := 0; pass < 3; pass++ {
		require.NoError(t, store.RerankAll(ctx))
		require.Equal(t, first, rankByUser(t, ctx, svc), "pass %d reassigned ranks with no mutation", pass)
	}
}

func rankByUser(t *testing.T, ctx context.Context, svc *Service) map[string]int {
	t.Helper()
	top, err := svc.Top(ctx, 100)
	require.NoError(t, err)
	ranks := make(map[string]int, len(top))
	for _, e := range top {
		ranks[e.UserID] = e.Rank
	}
	return ranks
}

func TestRecalculateAllRepairsStaleEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := newTestService(store, day(2026, 4, 1))

	require.NoError(t, svc.TrackActivity(ctx, "alice", ShareResource))

	// Corrupt the derived fields; the sweep must rebuild them from counters.
	e, err := store.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	e.Points = 0
	e.RankScore = 0
	require.NoError(t, store.Save(ctx, e))

	require.NoError(t, svc.RecalculateAll(ctx))

	alice, err := svc.EntryFor(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 10, alice.Points)
	require.Equal(t, 7.0, alice.RankScore)
}

func TestRecalculateAllContinuesPastFailure(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := newTestService(store, day(2026, 4, 1))

	require.NoError(t, svc.TrackActivity(ctx, "alice", ShareResource))
	require.NoError(t, svc.TrackActivity(ctx, "bob", ShareInsight))

	svc.store = &failingStore{Store: store, failUser: "bob"}
	require.NoError(t, svc.RecalculateAll(ctx))

	// bob's save failed but the sweep still ranked everyone.
	bob, err := svc.EntryFor(ctx, "bob")
	require.NoError(t, err)
	require.NotZero(t, bob.Rank)
}

func TestLevelBadgeAwardedOnce(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryStore(), day(2026, 4, 1))

	// Four mock interviews = 100 points = Silver.
	for i := 0; i < 4; i++ {
		require.NoError(t, svc.TrackActivity(ctx, "alice", ConductWorkshop))
	}

	e, err := svc.EntryFor(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, LevelSilver, e.Level)
	require.Len(t, e.Badges, 1)
	require.Equal(t, "Silver Tier", e.Badges[0].Name)

	// The sweep recomputes the same level; the badge must not duplicate.
	require.NoError(t, svc.RecalculateAll(ctx))
	e, err = svc.EntryFor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, e.Badges, 1)
}

func TestTopByContributionValidatesType(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryStore(), day(2026, 4, 1))

	require.NoError(t, svc.TrackActivity(ctx, "alice", ShareResource))
	require.NoError(t, svc.TrackActivity(ctx, "bob", ShareResource))
	require.NoError(t, svc.TrackActivity(ctx, "bob", ShareResource))

	top, err := svc.TopByContribution(ctx, "resourcesShared", 10)
	require.NoError(t, err)
	require.Equal(t, "bob", top[0].UserID)

	_, err = svc.TopByContribution(ctx, "totallyMadeUp", 10)
	require.ErrorIs(t, err, ErrUnknownContribution)
}

func TestEntryForCreatesLazily(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryStore(), day(2026, 4, 1))

	e, err := svc.EntryFor(ctx, "ghost")
	require.NoError(t, err)
	require.Equal(t, "ghost", e.UserID)
	require.Equal(t, LevelBronze, e.Level)
	require.Zero(t, e.Points)
	require.Zero(t, e.Rank) // rank undefined until the next global pass
}
