package handlers

import (
	"net/http"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/middleware"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// GetStandings returns the live leaderboard, recomputed from the current
// match history on every request.
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	computed, err := h.standingsService.GetStandings(r.Context(), currentUserID, tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": computed}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetFinalStandings returns the snapshot frozen when the tournament was
// completed. 404 until then.
func (h *StandingsHandler) GetFinalStandings(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snapshots, err := h.standingsService.GetFinalStandings(r.Context(), currentUserID, tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": snapshots}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
