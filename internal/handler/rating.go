package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

type RateAlumniPayload struct {
	Value    int    `json:"value"`
	Feedback string `json:"feedback,omitempty"`
}

// RateAlumni records a student's 1-5 star rating of an alumni and folds it
// into the alumni's leaderboard entry. The fold happens synchronously so
// validation errors reach the caller.
func RateAlumni(w http.ResponseWriter, r *http.Request) {
	alumniID := mux.Vars(r)["id"]

	student, err := middleware.RequireRole(r, "student")
	if err != nil {
		utils.Error(w, http.StatusForbidden, "only students can rate alumni", err)
		return
	}

	var req RateAlumniPayload
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Value < 1 || req.Value > 5 {
		utils.ErrorSimple(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	ctx := r.Context()

	var rating model.AlumniRating
	err = database.DB.QueryRow(ctx,
		`INSERT INTO ratings(student_id, alumni_id, value, feedback, created_at)
		 VALUES($1, $2, $3, NULLIF($4, ''), NOW())
		 RETURNING id, student_id, alumni_id, value, COALESCE(feedback, ''), created_at`,
		student.ID, alumniID, req.Value, req.Feedback,
	).Scan(&rating.ID, &rating.StudentID, &rating.AlumniID, &rating.Value, &rating.Feedback, &rating.CreatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save rating", err)
		return
	}

	if err := board.AddRating(ctx, alumniID, float64(req.Value)); err != nil {
		if errors.Is(err, leaderboard.ErrInvalidRating) {
			utils.Error(w, http.StatusBadRequest, "invalid rating value", err)
			return
		}
		// The rating row is saved; the accumulator catches up on a later
		// rating or a manual resync.
		utils.LogError("could not fold rating into leaderboard for alumni %s: %v", alumniID, err)
	}

	utils.Created(w, rating)
}
