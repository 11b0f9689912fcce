package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

// Context keys
type contextKey string

const (
	userContextKey  = contextKey("user")
	tokenContextKey = contextKey("token")
)

// AuthMiddleware validates the session token and injects the user into the
// request context. Requests without a valid token are rejected with 401.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.ErrorSimple(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, *user)
		ctx = context.WithValue(ctx, tokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the user when a valid token is present but never
// rejects the request. Public routes use it so handlers can still
// personalize their responses.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			// Not fatal on public routes; the request just stays anonymous.
			utils.LogDebug("optional auth: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, *user)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateTokenAndGetUser resolves an active session token to its user.
func validateTokenAndGetUser(ctx context.Context, token string) (*model.UserProfile, error) {
	query := `
	SELECT
		u.id, u.name, u.email, u.avatar, u.role, u.company, u.batch_year,
		u.is_verified, u.join_date, u.created_at, u.updated_at
	FROM users u
	JOIN sessions s ON u.id = s.user_id
	WHERE s.token = $1
		AND s.is_active = true
		AND s.expires_at > NOW()
		AND u.deleted_at IS NULL
		AND s.deleted_at IS NULL`

	user, err := scanner.ScanUserProfile(database.DB.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("token not found or expired")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return user, nil
}

// GetUserFromContext returns the authenticated user attached to the request.
func GetUserFromContext(r *http.Request) (model.UserProfile, error) {
	user, ok := r.Context().Value(userContextKey).(model.UserProfile)
	if !ok {
		return model.UserProfile{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// GetTokenFromContext returns the session token attached to the request.
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}

// RequireAuth is a handler-side helper to assert an authenticated user.
func RequireAuth(r *http.Request) (model.UserProfile, error) {
	return GetUserFromContext(r)
}

// RequireRole asserts the authenticated user has the given role.
func RequireRole(r *http.Request, role string) (model.UserProfile, error) {
	user, err := GetUserFromContext(r)
	if err != nil {
		return model.UserProfile{}, err
	}
	if user.Role != role {
		return model.UserProfile{}, fmt.Errorf("requires %s role", role)
	}
	return user, nil
}
