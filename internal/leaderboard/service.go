package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/sujalsolanki125/ConnectEDu-backend/internal/logger"
)

// Service orchestrates the contribution-tracking pipeline: load or create
// the entry, record the streak, bump the counter, recompute everything
// from scratch, persist, and trigger a global re-rank.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// TrackActivity applies one contribution event for a user. The activity
// tag is validated before any mutation; everything after that is
// best-effort persistence with no rollback.
func (s *Service) TrackActivity(ctx context.Context, userID string, a Activity) error {
	if !a.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, a)
	}

	e, err := s.store.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading leaderboard entry: %w", err)
	}

	e.Streak.Record(s.now())
	if err := e.Contributions.Apply(a); err != nil {
		return err
	}

	prevLevel := e.Level
	s.recompute(e)

	if err := s.store.Save(ctx, e); err != nil {
		return fmt.Errorf("saving leaderboard entry: %w", err)
	}

	s.awardLevelBadge(ctx, e, prevLevel)

	if err := s.store.RerankAll(ctx); err != nil {
		return fmt.Errorf("recalculating ranks: %w", err)
	}
	return nil
}

// TrackQuietly dispatches TrackActivity in the background and only logs
// failures. Business actions (accepting a request, posting a resource)
// must succeed even when gamification bookkeeping does not.
func (s *Service) TrackQuietly(userID string, a Activity) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.TrackActivity(ctx, userID, a); err != nil {
			logger.Error("leaderboard update failed for user %s (%s): %v", userID, a, err)
		}
	}()
}

// AddRating folds a 1-5 star rating into a user's entry. A 5-star rating
// counts toward fiveStarRatings; every rating counts as a helpful rating.
func (s *Service) AddRating(ctx context.Context, userID string, value float64) error {
	if value < 1 || value > 5 {
		return ErrInvalidRating
	}

	e, err := s.store.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading leaderboard entry: %w", err)
	}

	e.Streak.Record(s.now())
	if err := e.Rating.Add(value); err != nil {
		return err
	}
	if value == 5 {
		e.Contributions.FiveStarRatings++
	}
	e.Contributions.HelpfulRatings++

	prevLevel := e.Level
	s.recompute(e)

	if err := s.store.Save(ctx, e); err != nil {
		return fmt.Errorf("saving leaderboard entry: %w", err)
	}

	s.awardLevelBadge(ctx, e, prevLevel)

	if err := s.store.RerankAll(ctx); err != nil {
		return fmt.Errorf("recalculating ranks: %w", err)
	}
	return nil
}

// RecalculateAll recomputes points, level and rank score for every entry
// and re-ranks the whole population. A failure on one entry is logged and
// the sweep continues; the recompute is derived fresh from the counters,
// so a skipped entry self-heals on the next run.
func (s *Service) RecalculateAll(ctx context.Context) error {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("listing leaderboard entries: %w", err)
	}

	for _, e := range entries {
		prevLevel := e.Level
		s.recompute(e)
		if err := s.store.Save(ctx, e); err != nil {
			logger.Error("sweep: could not save entry for user %s: %v", e.UserID, err)
			continue
		}
		s.awardLevelBadge(ctx, e, prevLevel)
	}

	if err := s.store.RerankAll(ctx); err != nil {
		return fmt.Errorf("recalculating ranks: %w", err)
	}
	return nil
}

// Top returns the first limit entries of the latest ranking pass.
func (s *Service) Top(ctx context.Context, limit int) ([]*Entry, error) {
	return s.store.Top(ctx, limit)
}

// EntryFor returns one user's entry, creating it on first view.
func (s *Service) EntryFor(ctx context.Context, userID string) (*Entry, error) {
	return s.store.GetOrCreate(ctx, userID)
}

// TopByContribution returns the users with the highest count for one
// contribution type (JSON name, e.g. "resourcesShared").
func (s *Service) TopByContribution(ctx context.Context, contribution string, limit int) ([]*Entry, error) {
	column, ok := contributionColumns[contribution]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContribution, contribution)
	}
	return s.store.TopByContribution(ctx, column, limit)
}

// Nearby returns the entries ranked around a user.
func (s *Service) Nearby(ctx context.Context, userID string, window int) ([]*Entry, error) {
	return s.store.Nearby(ctx, userID, window)
}

// recompute derives points, level and rank score from the counters. Always
// a full recomputation: re-running it can never double-apply anything.
func (s *Service) recompute(e *Entry) {
	e.Points = ComputePoints(e.Contributions, e.Streak.Current)
	e.Level = ClassifyLevel(e.Points)
	e.RankScore = ComputeRankScore(e.Points, e.Rating.Average)
}

// awardLevelBadge hands out the tier badge when an entry crosses into a
// higher level. Badge persistence is best-effort.
func (s *Service) awardLevelBadge(ctx context.Context, e *Entry, prev Level) {
	if e.Level.Index() <= prev.Index() || e.Level == LevelBronze {
		return
	}
	b := levelBadges[e.Level]
	b.EarnedAt = s.now()
	if err := s.store.AwardBadge(ctx, e.UserID, b); err != nil {
		logger.Error("could not award %s badge to user %s: %v", e.Level, e.UserID, err)
		return
	}
	logger.Success("user %s reached %s", e.UserID, e.Level)
}

var levelBadges = map[Level]Badge{
	LevelSilver:   {Name: "Silver Tier", Icon: "🥈", Description: "Reached 100 contribution points"},
	LevelGold:     {Name: "Gold Tier", Icon: "🥇", Description: "Reached 200 contribution points"},
	LevelPlatinum: {Name: "Platinum Tier", Icon: "💠", Description: "Reached 300 contribution points"},
	LevelDiamond:  {Name: "Diamond Tier", Icon: "💎", Description: "Reached 500 contribution points"},
}
