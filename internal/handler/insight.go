package handler

import (
	"net/http"

	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

const insightColumns = `id, author_id, company, title, content, created_at`

type CreateInsightPayload struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateCompanyInsight posts an alumni insight about a company.
func CreateCompanyInsight(w http.ResponseWriter, r *http.Request) {
	author, err := middleware.RequireRole(r, "alumni")
	if err != nil {
		utils.Error(w, http.StatusForbidden, "only alumni can post company insights", err)
		return
	}

	var req CreateInsightPayload
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Company == "" || req.Title == "" || req.Content == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "company, title and content are required")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`INSERT INTO company_insights(author_id, company, title, content, created_at)
		 VALUES($1, $2, $3, $4, NOW())
		 RETURNING `+insightColumns,
		author.ID, req.Company, req.Title, req.Content,
	)
	created, err := scanner.ScanCompanyInsight(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create insight", err)
		return
	}

	board.TrackQuietly(author.ID, leaderboard.ShareInsight)

	utils.Created(w, created)
}

// GetCompanyInsights lists insights, optionally filtered by company.
func GetCompanyInsights(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")

	rows, err := database.DB.Query(r.Context(),
		`SELECT `+insightColumns+`
		 FROM company_insights
		 WHERE ($1 = '' OR company ILIKE '%' || $1 || '%')
		 ORDER BY created_at DESC`,
		company,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query insights", err)
		return
	}
	defer rows.Close()

	insights := []*model.CompanyInsight{}
	for rows.Next() {
		insight, err := scanner.ScanCompanyInsight(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan insight row", err)
			return
		}
		insights = append(insights, insight)
	}

	utils.Success(w, insights)
}
