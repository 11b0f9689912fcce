package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/logger"
)

// RequestStore is the slice of request persistence the scanner needs.
type RequestStore interface {
	// ExpirePending flips every pending mentorship request created before
	// the cutoff to expired and returns the alumni ids to penalize. The
	// status transition out of "pending" is what keeps a request from
	// being penalized twice across scanner runs.
	ExpirePending(ctx context.Context, cutoff time.Time) ([]string, error)
}

// ExpiredRequestScanner penalizes alumni who let mentorship requests sit
// unanswered past the age limit.
type ExpiredRequestScanner struct {
	requests RequestStore
	board    *leaderboard.Service
	maxAge   time.Duration
	now      func() time.Time
}

func NewExpiredRequestScanner(requests RequestStore, board *leaderboard.Service, maxAgeDays int) *ExpiredRequestScanner {
	return &ExpiredRequestScanner{
		requests: requests,
		board:    board,
		maxAge:   time.Duration(maxAgeDays) * 24 * time.Hour,
		now:      time.Now,
	}
}

// RunOnce performs a single scan. A penalty failure for one alumni is
// logged and the rest of the batch still goes through.
func (s *ExpiredRequestScanner) RunOnce(ctx context.Context) error {
	cutoff := s.now().Add(-s.maxAge)

	alumni, err := s.requests.ExpirePending(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("expiring stale requests: %w", err)
	}
	if len(alumni) == 0 {
		return nil
	}

	for _, alumniID := range alumni {
		if err := s.board.TrackActivity(ctx, alumniID, leaderboard.MissedRequest); err != nil {
			logger.Error("could not penalize user %s for missed request: %v", alumniID, err)
		}
	}

	logger.Job("expired %d stale mentorship requests", len(alumni))
	return nil
}

// PostgresRequestStore backs the scanner with the mentorship_requests table.
type PostgresRequestStore struct {
	pool *pgxpool.Pool
}

func NewPostgresRequestStore(pool *pgxpool.Pool) *PostgresRequestStore {
	return &PostgresRequestStore{pool: pool}
}

func (s *PostgresRequestStore) ExpirePending(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		UPDATE mentorship_requests
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND created_at < $1
		RETURNING alumni_id
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("updating expired requests: %w", err)
	}
	defer rows.Close()

	var alumni []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning expired request: %w", err)
		}
		alumni = append(alumni, id)
	}
	return alumni, rows.Err()
}
