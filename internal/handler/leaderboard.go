package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/leaderboard"
	"github.com/sujalsolanki125/ConnectEDu-backend/internal/utils"
)

// GetLeaderboard returns the global ranking (param: limit, default 50).
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	entries, err := board.Top(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard", err)
		return
	}

	utils.Success(w, entries)
}

// GetUserEntry returns one user's entry, creating an empty one on first view.
func GetUserEntry(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	entry, err := board.EntryFor(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch leaderboard entry", err)
		return
	}

	utils.Success(w, entry)
}

// GetNearbyUsers returns the entries ranked around a user (param: range,
// default 5).
func GetNearbyUsers(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	window := 5
	if v, err := strconv.Atoi(r.URL.Query().Get("range")); err == nil && v > 0 {
		window = v
	}

	entries, err := board.Nearby(r.Context(), userID, window)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query nearby users", err)
		return
	}

	utils.Success(w, entries)
}

// GetTopByContribution returns the users with the highest count of one
// contribution type, e.g. /leaderboard/top/resourcesShared.
func GetTopByContribution(w http.ResponseWriter, r *http.Request) {
	contribution := mux.Vars(r)["contribution"]

	limit := 10
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	entries, err := board.TopByContribution(r.Context(), contribution, limit)
	if err != nil {
		if errors.Is(err, leaderboard.ErrUnknownContribution) {
			utils.Error(w, http.StatusBadRequest, "unknown contribution type", err)
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not query top contributors", err)
		return
	}

	utils.Success(w, entries)
}
