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

const interviewColumns = `id, author_id, company, role, difficulty, content, created_at`

type CreateInterviewPayload struct {
	Company    string `json:"company"`
	Role       string `json:"role"`
	Difficulty string `json:"difficulty,omitempty"`
	Content    string `json:"content"`
}

// CreateInterviewExperience publishes an alumni interview write-up and
// credits the author's leaderboard entry.
func CreateInterviewExperience(w http.ResponseWriter, r *http.Request) {
	author, err := middleware.RequireRole(r, "alumni")
	if err != nil {
		utils.Error(w, http.StatusForbidden, "only alumni can share interview experiences", err)
		return
	}

	var req CreateInterviewPayload
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Company == "" || req.Role == "" || req.Content == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "company, role and content are required")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`INSERT INTO interview_experiences(author_id, company, role, difficulty, content, created_at)
		 VALUES($1, $2, $3, NULLIF($4, ''), $5, NOW())
		 RETURNING `+interviewColumns,
		author.ID, req.Company, req.Role, req.Difficulty, req.Content,
	)
	created, err := scanner.ScanInterviewExperience(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create interview experience", err)
		return
	}

	board.TrackQuietly(author.ID, leaderboard.UploadInterview)

	utils.Created(w, created)
}

// GetInterviewExperiences lists write-ups, optionally filtered by company.
func GetInterviewExperiences(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")

	rows, err := database.DB.Query(r.Context(),
		`SELECT `+interviewColumns+`
		 FROM interview_experiences
		 WHERE ($1 = '' OR company ILIKE '%' || $1 || '%')
		 ORDER BY created_at DESC`,
		company,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query interview experiences", err)
		return
	}
	defer rows.Close()

	experiences := []*model.InterviewExperience{}
	for rows.Next() {
		exp, err := scanner.ScanInterviewExperience(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan interview row", err)
			return
		}
		experiences = append(experiences, exp)
	}

	utils.Success(w, experiences)
}

func GetInterviewExperience(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	row := database.DB.QueryRow(r.Context(),
		`SELECT `+interviewColumns+` FROM interview_experiences WHERE id=$1`,
		id,
	)
	exp, err := scanner.ScanInterviewExperience(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			utils.ErrorSimple(w, http.StatusNotFound, "interview experience not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get interview experience", err)
		return
	}

	utils.Success(w, exp)
}
