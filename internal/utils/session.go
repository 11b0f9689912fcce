package utils

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
)

// SessionDuration is how long a login session stays valid (7 days)
const SessionDuration = 7 * 24 * time.Hour

// CreateSession creates a new session for a user and returns its token
func CreateSession(ctx context.Context, userID, ipAddress, userAgent string) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	var sessionID string
	err := database.DB.QueryRow(ctx,
		`INSERT INTO sessions(user_id, token, ip_address, user_agent, is_active, created_at, expires_at)
		 VALUES($1, $2, $3, $4, true, $5, $6)
		 RETURNING id`,
		userID, token, ipAddress, userAgent, now, now.Add(SessionDuration),
	).Scan(&sessionID)

	if err != nil {
		return "", err
	}

	return token, nil
}

// InvalidateSession deactivates a session (soft delete)
func InvalidateSession(ctx context.Context, token string) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE sessions SET is_active=false, deleted_at=NOW() WHERE token=$1 AND is_active=true`,
		token,
	)
	return err
}
