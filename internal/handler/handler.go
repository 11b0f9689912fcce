package handler

import (
	"net/http"

	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/services"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

var (
	board   *leaderboard.Service
	uploads *services.CloudinaryService
)

// Init wires the shared services into the handler package.
func Init(b *leaderboard.Service, u *services.CloudinaryService) {
	board = b
	uploads = u
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
