package handler

import (
	"net/http"
	"time"

	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

const workshopColumns = `id, host_id, title, description, scheduled_at, created_at`

type CreateWorkshopPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// CreateWorkshop registers a mock interview or group session hosted by an
// alumni. Hosting counts as the highest-value contribution.
func CreateWorkshop(w http.ResponseWriter, r *http.Request) {
	host, err := middleware.RequireRole(r, "alumni")
	if err != nil {
		utils.Error(w, http.StatusForbidden, "only alumni can host workshops", err)
		return
	}

	var req CreateWorkshopPayload
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Title == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "title is required")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`INSERT INTO workshops(host_id, title, description, scheduled_at, created_at)
		 VALUES($1, $2, NULLIF($3, ''), $4, NOW())
		 RETURNING `+workshopColumns,
		host.ID, req.Title, req.Description, req.ScheduledAt,
	)
	created, err := scanner.ScanWorkshop(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create workshop", err)
		return
	}

	board.TrackQuietly(host.ID, leaderboard.ConductWorkshop)

	utils.Created(w, created)
}

// GetWorkshops lists workshops, upcoming first.
func GetWorkshops(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(),
		`SELECT `+workshopColumns+`
		 FROM workshops
		 ORDER BY scheduled_at DESC NULLS LAST, created_at DESC`,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query workshops", err)
		return
	}
	defer rows.Close()

	workshops := []*model.Workshop{}
	for rows.Next() {
		ws, err := scanner.ScanWorkshop(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan workshop row", err)
			return
		}
		workshops = append(workshops, ws)
	}

	utils.Success(w, workshops)
}
