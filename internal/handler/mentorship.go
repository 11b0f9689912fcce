package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

const requestColumns = `id, student_id, alumni_id, topic, message, status, created_at, updated_at`

type CreateRequestPayload struct {
	AlumniID string `json:"alumniId"`
	Topic    string `json:"topic"`
	Message  string `json:"message,omitempty"`
}

// CreateMentorshipRequest lets a student send a pending request to an alumni.
func CreateMentorshipRequest(w http.ResponseWriter, r *http.Request) {
	student, err := middleware.RequireRole(r, "student")
	if err != nil {
		utils.Error(w, http.StatusForbidden, "only students can request mentorship", err)
		return
	}

	var req CreateRequestPayload
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.AlumniID == "" || req.Topic == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "alumniId and topic are required")
		return
	}

	ctx := r.Context()

	var alumniRole string
	err = database.DB.QueryRow(ctx,
		`SELECT role FROM users WHERE id=$1 AND deleted_at IS NULL`,
		req.AlumniID,
	).Scan(&alumniRole)
	if err != nil || alumniRole != "alumni" {
		utils.ErrorSimple(w, http.StatusBadRequest, "target user is not an alumni")
		return
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO mentorship_requests(student_id, alumni_id, topic, message, status, created_at, updated_at)
		 VALUES($1, $2, $3, NULLIF($4, ''), $5, NOW(), NOW())
		 RETURNING `+requestColumns,
		student.ID, req.AlumniID, req.Topic, req.Message, model.RequestPending,
	)
	created, err := scanner.ScanMentorshipRequest(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create request", err)
		return
	}

	utils.Created(w, created)
}

// GetMentorshipRequests lists the caller's requests, sent for students and
// received for alumni. Optional status filter.
func GetMentorshipRequests(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required", err)
		return
	}

	status := r.URL.Query().Get("status")
	side := "student_id"
	if user.Role == "alumni" {
		side = "alumni_id"
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT `+requestColumns+`
		 FROM mentorship_requests
		 WHERE `+side+` = $1 AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC`,
		user.ID, status,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query requests", err)
		return
	}
	defer rows.Close()

	requests := []*model.MentorshipRequest{}
	for rows.Next() {
		req, err := scanner.ScanMentorshipRequest(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan request row", err)
			return
		}
		requests = append(requests, req)
	}

	utils.Success(w, requests)
}

// AcceptMentorshipRequest moves a pending request to accepted and credits
// the alumni's leaderboard entry in the background.
func AcceptMentorshipRequest(w http.ResponseWriter, r *http.Request) {
	transitionRequest(w, r, model.RequestPending, model.RequestAccepted, leaderboard.AcceptMentorship)
}

// RejectMentorshipRequest moves a pending request to rejected. No
// leaderboard event fires.
func RejectMentorshipRequest(w http.ResponseWriter, r *http.Request) {
	transitionRequest(w, r, model.RequestPending, model.RequestRejected, "")
}

// CompleteMentorshipRequest moves an accepted request to completed and
// credits a mentorship session.
func CompleteMentorshipRequest(w http.ResponseWriter, r *http.Request) {
	transitionRequest(w, r, model.RequestAccepted, model.RequestCompleted, leaderboard.CompleteMentorship)
}

// transitionRequest applies one lifecycle transition. The WHERE clause on the
// current status makes the transition idempotent: a second call finds no
// matching row and reports a conflict instead of double-crediting.
func transitionRequest(w http.ResponseWriter, r *http.Request, from, to string, activity leaderboard.Activity) {
	id := mux.Vars(r)["id"]

	alumni, err := middleware.RequireRole(r, "alumni")
	if err != nil {
		utils.Error(w, http.StatusForbidden, "only the alumni can update this request", err)
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`UPDATE mentorship_requests
		 SET status=$3, updated_at=NOW()
		 WHERE id=$1 AND alumni_id=$2 AND status=$4
		 RETURNING `+requestColumns,
		id, alumni.ID, to, from,
	)
	updated, err := scanner.ScanMentorshipRequest(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			utils.ErrorSimple(w, http.StatusConflict, "request not found or not in "+from+" state")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not update request", err)
		return
	}

	if activity != "" {
		board.TrackQuietly(alumni.ID, activity)
	}

	utils.Success(w, updated)
}
