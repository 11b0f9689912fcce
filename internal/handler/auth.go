package handler

import (
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/database"
	model "github.com/sujalsolanki125/ConnectEDu-backend/internal/models"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/scanner"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Company   string `json:"company,omitempty"`
	BatchYear int    `json:"batchYear,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const userColumns = `id, name, email, avatar, role, company, batch_year, is_verified, join_date, created_at, updated_at`

func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	req.Role = strings.ToLower(req.Role)
	if req.Role != "student" && req.Role != "alumni" {
		utils.ErrorSimple(w, http.StatusBadRequest, "role must be student or alumni")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	ctx := r.Context()
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, role, company, batch_year, join_date, created_at, updated_at)
		 VALUES($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, 0), NOW(), NOW(), NOW())
		 RETURNING `+userColumns,
		req.Name, req.Email, string(hashed), req.Role, req.Company, req.BatchYear,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user", err)
		return
	}

	// Auto-login after signup
	token, err := utils.CreateSession(ctx, user.ID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Created(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	ctx := r.Context()
	var user model.UserProfile
	var hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(avatar, ''), role, COALESCE(company, ''), COALESCE(batch_year, 0),
		 is_verified, join_date, created_at, updated_at, password_hash
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		req.Email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Avatar, &user.Role, &user.Company, &user.BatchYear,
		&user.IsVerified, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt, &hashedPassword)

	if err != nil {
		if err == pgx.ErrNoRows {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not query user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.CreateSession(ctx, user.ID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token", err)
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not logout", err)
		return
	}

	utils.Message(w, "logged out")
}
