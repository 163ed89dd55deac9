package handlers

import (
	"net/http"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/middleware"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/services"
)

type WorkspaceHandler struct {
	workspaceService services.WorkspaceService
}

func NewWorkspaceHandler(workspaceService services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

type workspaceInput struct {
	Name string `json:"name"`
}

func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input workspaceInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	workspace, err := h.workspaceService.Create(r.Context(), currentUserID, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"workspace": workspace}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	workspaces, err := h.workspaceService.ListMine(r.Context(), currentUserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"workspaces": workspaces}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WorkspaceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	workspaceID, err := getIDFromURL(r, "workspaceID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	workspace, err := h.workspaceService.GetByID(r.Context(), currentUserID, workspaceID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"workspace": workspace}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WorkspaceHandler) Rename(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	workspaceID, err := getIDFromURL(r, "workspaceID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input workspaceInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	workspace, err := h.workspaceService.Rename(r.Context(), currentUserID, workspaceID, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"workspace": workspace}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	workspaceID, err := getIDFromURL(r, "workspaceID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.workspaceService.Delete(r.Context(), currentUserID, workspaceID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
