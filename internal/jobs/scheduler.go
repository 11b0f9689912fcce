package jobs

import (
	"context"
	"time"

	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/logger"
)

// Scheduler drives the periodic leaderboard maintenance: a recurring full
// recalculation sweep, a stale-request scan, and a daily sweep at local
// midnight. The triggers are independent and stateless; a failed run is
// logged and the next one proceeds regardless.
type Scheduler struct {
	board   *leaderboard.Service
	scanner *ExpiredRequestScanner

	recalcEvery time.Duration
	scanEvery   time.Duration
}

func NewScheduler(board *leaderboard.Service, scanner *ExpiredRequestScanner, recalcEvery, scanEvery time.Duration) *Scheduler {
	return &Scheduler{
		board:       board,
		scanner:     scanner,
		recalcEvery: recalcEvery,
		scanEvery:   scanEvery,
	}
}

// Start launches the three triggers. They stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.runEvery(ctx, s.recalcEvery, "leaderboard sweep", s.sweep)
	go s.runEvery(ctx, s.scanEvery, "expired request scan", s.scanner.RunOnce)
	go s.runDaily(ctx)

	logger.Job("schedulers started (sweep %v, expiry scan %v, daily at midnight)", s.recalcEvery, s.scanEvery)
}

func (s *Scheduler) sweep(ctx context.Context) error {
	return s.board.RecalculateAll(ctx)
}

func (s *Scheduler) runEvery(ctx context.Context, every time.Duration, name string, run func(context.Context) error) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if err := run(ctx); err != nil {
			logger.Error("%s failed: %v", name, err)
			continue
		}
		logger.Job("%s completed", name)
	}
}

// runDaily fires the sweep at the next local midnight, then every 24h.
func (s *Scheduler) runDaily(ctx context.Context) {
	for {
		timer := time.NewTimer(time.Until(nextMidnight(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		if err := s.sweep(ctx); err != nil {
			logger.Error("daily leaderboard sweep failed: %v", err)
			continue
		}
		logger.Job("daily leaderboard sweep completed")
	}
}

func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
