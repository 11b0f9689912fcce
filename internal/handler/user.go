package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/middleware"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

// GetUsers lists user profiles, optionally filtered by role or company.
func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	role := query.Get("role")
	company := query.Get("company")

	rows, err := database.DB.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE deleted_at IS NULL
			AND ($1 = '' OR role = $1)
			AND ($2 = '' OR company ILIKE '%' || $2 || '%')
		 ORDER BY name`,
		role, company,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	defer rows.Close()

	users := []*model.UserProfile{}
	for rows.Next() {
		user, err := scanner.ScanUserProfile(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row", err)
			return
		}
		users = append(users, user)
	}

	utils.Success(w, users)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	row := database.DB.QueryRow(r.Context(),
		`SELECT `+userColumns+` FROM users WHERE id=$1 AND deleted_at IS NULL`,
		id,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			utils.ErrorSimple(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get user", err)
		return
	}

	utils.Success(w, user)
}

type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty"`
	Company   *string `json:"company,omitempty"`
	BatchYear *int    `json:"batchYear,omitempty"`
}

// UpdateUser updates the caller's own profile.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	caller, err := middleware.RequireAuth(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required", err)
		return
	}
	if caller.ID != id {
		utils.ErrorSimple(w, http.StatusForbidden, "can only update own profile")
		return
	}

	var req UpdateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`UPDATE users SET
			name = COALESCE($2, name),
			company = COALESCE($3, company),
			batch_year = COALESCE($4, batch_year),
			updated_at = NOW()
		 WHERE id=$1 AND deleted_at IS NULL
		 RETURNING `+userColumns,
		id, req.Name, req.Company, req.BatchYear,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update user", err)
		return
	}

	utils.Success(w, user)
}

// UploadAvatar receives a multipart image and stores it on Cloudinary.
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	caller, err := middleware.RequireAuth(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required", err)
		return
	}
	if caller.ID != id {
		utils.ErrorSimple(w, http.StatusForbidden, "can only update own avatar")
		return
	}

	// 10 MB max
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "could not parse multipart form", err)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing avatar file", err)
		return
	}
	defer file.Close()

	if uploads == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "file uploads are not configured")
		return
	}

	url, err := uploads.UploadAvatar(r.Context(), file, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	_, err = database.DB.Exec(r.Context(),
		`UPDATE users SET avatar=$2, updated_at=NOW() WHERE id=$1`,
		id, url,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar URL", err)
		return
	}

	utils.Success(w, map[string]string{"avatar": url})
}
