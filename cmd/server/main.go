package main

import (
	"context"
	"net/http"
	"os"

	"github.com/sujalsolanki125/ConnectEDu-backend/internal/api"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/config"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/handler"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/jobs"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/logger"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Apply pending schema migrations
	if err := database.Migrate(cfg); err != nil {
		logger.Error("Migration failed: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Wire the leaderboard pipeline
	board := leaderboard.NewService(leaderboard.NewPostgresStore(db))

	uploads, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
	}

	handler.Init(board, uploads)

	// Background jobs: periodic rank sweep and expired request scan
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scanner := jobs.NewExpiredRequestScanner(jobs.NewPostgresRequestStore(db), board, cfg.RequestMaxAgeDays)
	jobs.NewScheduler(board, scanner, cfg.RecalcInterval, cfg.ExpiryScanInterval).Start(ctx)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	httpHandler := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, httpHandler); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
