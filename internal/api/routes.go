package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/handler"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}", handler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Mentorship requests
	authenticatedRoutes.HandleFunc("/mentorship/requests", handler.CreateMentorshipRequest).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/mentorship/requests", handler.GetMentorshipRequests).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/mentorship/requests/{id}/accept", handler.AcceptMentorshipRequest).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/mentorship/requests/{id}/reject", handler.RejectMentorshipRequest).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/mentorship/requests/{id}/complete", handler.CompleteMentorshipRequest).Methods(http.MethodPost)

	// Interview experiences
	r.HandleFunc("/interviews", handler.GetInterviewExperiences).Methods(http.MethodGet)
	r.HandleFunc("/interviews/{id}", handler.GetInterviewExperience).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/interviews", handler.CreateInterviewExperience).Methods(http.MethodPost)

	// Resources
	r.HandleFunc("/resources", handler.GetResources).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/resources", handler.CreateResource).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/resources/{id}", handler.DeleteResource).Methods(http.MethodDelete)

	// Company insights
	r.HandleFunc("/insights", handler.GetCompanyInsights).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/insights", handler.CreateCompanyInsight).Methods(http.MethodPost)

	// Q&A
	r.HandleFunc("/questions", handler.GetQuestions).Methods(http.MethodGet)
	r.HandleFunc("/questions/{id}", handler.GetQuestion).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/questions", handler.CreateQuestion).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/questions/{id}/answers", handler.CreateAnswer).Methods(http.MethodPost)

	// Workshops
	r.HandleFunc("/workshops", handler.GetWorkshops).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workshops", handler.CreateWorkshop).Methods(http.MethodPost)

	// Ratings
	authenticatedRoutes.HandleFunc("/alumni/{id}/ratings", handler.RateAlumni).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{userId}", handler.GetUserEntry).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{userId}/nearby", handler.GetNearbyUsers).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/top/{contribution}", handler.GetTopByContribution).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route not found)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
