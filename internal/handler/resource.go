package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/services"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

const resourceColumns = `id, author_id, title, description, file_url, created_at`

// CreateResource shares a placement resource. The form carries the title,
// an optional description and an optional file that goes to Cloudinary.
func CreateResource(w http.ResponseWriter, r *http.Request) {
	author, err := middleware.RequireRole(r, "alumni")
	if err != nil {
		utils.Error(w, http.StatusForbidden, "only alumni can share resources", err)
		return
	}

	// 20 MB max
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "could not parse multipart form", err)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	if title == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx := r.Context()
	resourceID := uuid.NewString()

	fileURL := ""
	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		if uploads == nil {
			utils.ErrorSimple(w, http.StatusServiceUnavailable, "file uploads are not configured")
			return
		}
		fileURL, err = uploads.UploadResourceFile(ctx, file, resourceID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not upload file", err)
			return
		}
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO resources(id, author_id, title, description, file_url, created_at)
		 VALUES($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NOW())
		 RETURNING `+resourceColumns,
		resourceID, author.ID, title, description, fileURL,
	)
	created, err := scanner.ScanResource(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create resource", err)
		return
	}

	board.TrackQuietly(author.ID, leaderboard.ShareResource)

	utils.Created(w, created)
}

// DeleteResource removes a resource the caller authored. The Cloudinary
// file is cleaned up best-effort after the row is gone.
func DeleteResource(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	caller, err := middleware.RequireAuth(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required", err)
		return
	}

	ctx := r.Context()

	var fileURL string
	err = database.DB.QueryRow(ctx,
		`DELETE FROM resources WHERE id=$1 AND author_id=$2 RETURNING COALESCE(file_url, '')`,
		id, caller.ID,
	).Scan(&fileURL)
	if err != nil {
		if err == pgx.ErrNoRows {
			utils.ErrorSimple(w, http.StatusNotFound, "resource not found or not yours")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not delete resource", err)
		return
	}

	if fileURL != "" && uploads != nil {
		if err := uploads.DeleteImage(ctx, services.ResourcePublicID(id)); err != nil {
			utils.LogError("could not delete file for resource %s: %v", id, err)
		}
	}

	utils.Message(w, "resource deleted")
}

// GetResources lists shared resources, newest first.
func GetResources(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(),
		`SELECT `+resourceColumns+` FROM resources ORDER BY created_at DESC`,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query resources", err)
		return
	}
	defer rows.Close()

	resources := []*model.Resource{}
	for rows.Next() {
		res, err := scanner.ScanResource(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan resource row", err)
			return
		}
		resources = append(resources, res)
	}

	utils.Success(w, resources)
}
