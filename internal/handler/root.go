package handler

import (
	"net/http"

	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

// RootHandler lists every available API route
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "ConnectEDu API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/signup", "description": "Register a student or alumni account"},
				{"method": "POST", "path": "/auth/login", "description": "Log in with email and password"},
				{"method": "POST", "path": "/auth/logout", "description": "Invalidate the current session"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "List users (filter by role)"},
				{"method": "GET", "path": "/users/{id}", "description": "Get one user profile"},
				{"method": "PUT", "path": "/users/{id}", "description": "Update own profile"},
				{"method": "POST", "path": "/users/{id}/avatar", "description": "Upload profile picture"},
			},
			"mentorship": []map[string]string{
				{"method": "POST", "path": "/mentorship/requests", "description": "Student sends a mentorship request"},
				{"method": "GET", "path": "/mentorship/requests", "description": "List own requests (sent or received)"},
				{"method": "POST", "path": "/mentorship/requests/{id}/accept", "description": "Alumni accepts a pending request"},
				{"method": "POST", "path": "/mentorship/requests/{id}/reject", "description": "Alumni rejects a pending request"},
				{"method": "POST", "path": "/mentorship/requests/{id}/complete", "description": "Mark an accepted mentorship as completed"},
			},
			"content": []map[string]string{
				{"method": "POST", "path": "/interviews", "description": "Share an interview experience"},
				{"method": "GET", "path": "/interviews", "description": "Browse interview experiences"},
				{"method": "POST", "path": "/resources", "description": "Share a placement resource (multipart upload)"},
				{"method": "GET", "path": "/resources", "description": "Browse shared resources"},
				{"method": "DELETE", "path": "/resources/{id}", "description": "Delete an own resource"},
				{"method": "POST", "path": "/insights", "description": "Post a company insight"},
				{"method": "GET", "path": "/insights", "description": "Browse company insights"},
			},
			"qa": []map[string]string{
				{"method": "POST", "path": "/questions", "description": "Ask a question"},
				{"method": "GET", "path": "/questions", "description": "Browse questions"},
				{"method": "GET", "path": "/questions/{id}", "description": "Get a question with its answers"},
				{"method": "POST", "path": "/questions/{id}/answers", "description": "Answer a question"},
			},
			"workshops": []map[string]string{
				{"method": "POST", "path": "/workshops", "description": "Alumni hosts a mock interview or workshop"},
				{"method": "GET", "path": "/workshops", "description": "Browse upcoming workshops"},
			},
			"ratings": []map[string]string{
				{"method": "POST", "path": "/alumni/{id}/ratings", "description": "Rate an alumni (1-5 stars)"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Global ranking (param: limit)"},
				{"method": "GET", "path": "/leaderboard/users/{userId}", "description": "One user's entry with rank and badges"},
				{"method": "GET", "path": "/leaderboard/users/{userId}/nearby", "description": "Entries ranked around a user (param: range)"},
				{"method": "GET", "path": "/leaderboard/top/{contribution}", "description": "Top contributors of one type"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "API health check"},
			},
		},
		"documentation": map[string]string{
			"description": "REST API for ConnectEDu - students and alumni mentorship platform",
			"contact":     "support@connectedu.app",
		},
	}

	utils.Success(w, routes)
}
