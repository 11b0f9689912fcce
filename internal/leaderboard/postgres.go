package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

// PostgresStore persists entries in the leaderboard_entries table, one row
// per user. No transactions wrap the track pipeline and no version column
// guards concurrent writers; two racing updates for the same user resolve
// last-write-wins, matching the documented consistency model.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const entryColumns = `
	le.user_id, u.name, u.avatar,
	le.accepted_mentorships, le.mentorship_sessions, le.interview_experiences,
	le.resources_shared, le.mock_interviews, le.five_star_ratings,
	le.company_insights, le.questions_answered, le.helpful_ratings,
	le.missed_requests,
	le.rating_sum, le.rating_total, le.rating_average,
	le.streak_current, le.streak_longest, le.last_activity_date,
	le.points, le.level, le.rank_score, le.rank`

func scanEntry(row interface{ Scan(dest ...interface{}) error }) (*Entry, error) {
	var e Entry
	var avatar sql.NullString
	var level string

	err := row.Scan(
		&e.UserID, &e.UserName, &avatar,
		&e.Contributions.AcceptedMentorships, &e.Contributions.MentorshipSessions,
		&e.Contributions.InterviewExperiences, &e.Contributions.ResourcesShared,
		&e.Contributions.MockInterviews, &e.Contributions.FiveStarRatings,
		&e.Contributions.CompanyInsights, &e.Contributions.QuestionsAnswered,
		&e.Contributions.HelpfulRatings, &e.Contributions.MissedRequests,
		&e.Rating.Sum, &e.Rating.Total, &e.Rating.Average,
		&e.Streak.Current, &e.Streak.Longest, &e.Streak.LastActivityDate,
		&e.Points, &level, &e.RankScore, &e.Rank,
	)
	if err != nil {
		return nil, err
	}

	e.Avatar = utils.NullStringToString(avatar)
	e.Level = Level(level)
	return &e, nil
}

func (s *PostgresStore) GetOrCreate(ctx context.Context, userID string) (*Entry, error) {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO leaderboard_entries (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating leaderboard entry: %w", err)
	}

	row := s.pool.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM leaderboard_entries le
		INNER JOIN users u ON u.id = le.user_id
		WHERE le.user_id = $1
	`, userID)

	e, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard entry: %w", err)
	}

	badges, err := s.loadBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	e.Badges = badges

	return e, nil
}

func (s *PostgresStore) Save(ctx context.Context, e *Entry) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE leaderboard_entries SET
			accepted_mentorships = $2,
			mentorship_sessions = $3,
			interview_experiences = $4,
			resources_shared = $5,
			mock_interviews = $6,
			five_star_ratings = $7,
			company_insights = $8,
			questions_answered = $9,
			helpful_ratings = $10,
			missed_requests = $11,
			rating_sum = $12,
			rating_total = $13,
			rating_average = $14,
			streak_current = $15,
			streak_longest = $16,
			last_activity_date = $17,
			points = $18,
			level = $19,
			rank_score = $20,
			updated_at = NOW()
		WHERE user_id = $1
	`,
		e.UserID,
		e.Contributions.AcceptedMentorships, e.Contributions.MentorshipSessions,
		e.Contributions.InterviewExperiences, e.Contributions.ResourcesShared,
		e.Contributions.MockInterviews, e.Contributions.FiveStarRatings,
		e.Contributions.CompanyInsights, e.Contributions.QuestionsAnswered,
		e.Contributions.HelpfulRatings, e.Contributions.MissedRequests,
		e.Rating.Sum, e.Rating.Total, e.Rating.Average,
		e.Streak.Current, e.Streak.Longest, e.Streak.LastActivityDate,
		e.Points, string(e.Level), e.RankScore,
	)
	if err != nil {
		return fmt.Errorf("updating leaderboard entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) RerankAll(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		WITH ranked AS (
			SELECT
				user_id,
				ROW_NUMBER() OVER (
					ORDER BY rank_score DESC, points DESC, rating_average DESC, user_id
				) AS new_rank
			FROM leaderboard_entries
		)
		UPDATE leaderboard_entries le
		SET rank = ranked.new_rank
		FROM ranked
		WHERE le.user_id = ranked.user_id
	`)
	if err != nil {
		return fmt.Errorf("reranking leaderboard: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM leaderboard_entries le
		INNER JOIN users u ON u.id = le.user_id
		WHERE u.deleted_at IS NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("listing leaderboard entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *PostgresStore) AwardBadge(ctx context.Context, userID string, b Badge) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO badges (user_id, name, icon, description, earned_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, name) DO NOTHING
	`, userID, b.Name, b.Icon, b.Description, b.EarnedAt)
	if err != nil {
		return fmt.Errorf("awarding badge: %w", err)
	}
	return nil
}

func (s *PostgresStore) Top(ctx context.Context, limit int) ([]*Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM leaderboard_entries le
		INNER JOIN users u ON u.id = le.user_id
		WHERE u.deleted_at IS NULL AND le.rank > 0
		ORDER BY le.rank
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// TopByContribution orders by one counter column. The column name comes
// from the fixed contributionColumns whitelist, never from user input.
func (s *PostgresStore) TopByContribution(ctx context.Context, column string, limit int) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT `+entryColumns+`
		FROM leaderboard_entries le
		INNER JOIN users u ON u.id = le.user_id
		WHERE u.deleted_at IS NULL
		ORDER BY le.%s DESC, le.rank
		LIMIT $1
	`, column)

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top contributors: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *PostgresStore) Nearby(ctx context.Context, userID string, window int) ([]*Entry, error) {
	rows, err := s.pool.Query(ctx, `
		WITH target AS (
			SELECT rank FROM leaderboard_entries WHERE user_id = $1
		)
		SELECT `+entryColumns+`
		FROM leaderboard_entries le
		INNER JOIN users u ON u.id = le.user_id
		WHERE u.deleted_at IS NULL
			AND le.rank > 0
			AND le.rank BETWEEN (SELECT rank FROM target) - $2
			               AND (SELECT rank FROM target) + $2
		ORDER BY le.rank
	`, userID, window)
	if err != nil {
		return nil, fmt.Errorf("querying nearby entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *PostgresStore) loadBadges(ctx context.Context, userID string) ([]Badge, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, icon, description, earned_at
		FROM badges WHERE user_id = $1 ORDER BY earned_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("loading badges: %w", err)
	}
	defer rows.Close()

	var badges []Badge
	for rows.Next() {
		var b Badge
		if err := rows.Scan(&b.Name, &b.Icon, &b.Description, &b.EarnedAt); err != nil {
			return nil, fmt.Errorf("scanning badge: %w", err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

func collectEntries(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
