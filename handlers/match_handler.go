package handlers

import (
	"errors"
	"net/http"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/middleware"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var input services.CreateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	match, err := h.matchService.Create(r.Context(), currentUserID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) ListByTournament(w http.ResponseWriter, r *http.Request) {
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

	var roundFilter *int
	if raw := r.URL.Query().Get("round"); raw != "" {
		round, err := parsePositiveInt(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("invalid round filter"))
			return
		}
		roundFilter = &round
	}
	var statusFilter *models.MatchStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.MatchStatus(raw)
		switch status {
		case models.MatchStatusReady, models.MatchStatusPending, models.MatchStatusCompleted, models.MatchStatusBye:
			statusFilter = &status
		default:
			badRequestResponse(w, r, errors.New("invalid status filter"))
			return
		}
	}

	matches, err := h.matchService.ListByTournament(r.Context(), currentUserID, tournamentID, roundFilter, statusFilter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type reportResultInput struct {
	// A nil winner records a draw.
	WinnerID *int `json:"winner_id"`
}

func (h *MatchHandler) ReportResult(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input reportResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.ReportResult(r.Context(), currentUserID, matchID, input.WinnerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.Delete(r.Context(), currentUserID, matchID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
