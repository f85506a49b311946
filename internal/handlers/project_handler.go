// File: internal/handlers/project_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/henghaopu/nuxt-chat/internal/repository/project"
	"github.com/henghaopu/nuxt-chat/internal/services"
)

type ProjectHandler struct {
	ProjectService *services.ProjectService
}

func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{ProjectService: ps}
}

// GetAllProjects returns every project sorted by name.
func (h *ProjectHandler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.GetAllProjects(r.Context())
	if err != nil {
		writeError(w, "Could not retrieve projects", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	created, err := h.ProjectService.CreateProject(r.Context(), req.Name)
	if isValidationError(err) {
		writeError(w, "Name is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, "Could not create project", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	found, err := h.ProjectService.GetProjectByID(r.Context(), projectID)
	if errors.Is(err, project.ErrProjectNotFound) {
		writeError(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, "Could not retrieve project", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// UpdateProject renames a project. Absence of the project wins over body
// validation, so a bad body against a missing project still yields 404.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	if _, err := h.ProjectService.GetProjectByID(r.Context(), projectID); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeError(w, "Project not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve project", http.StatusInternalServerError)
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	updated, err := h.ProjectService.UpdateProject(r.Context(), projectID, req.Name)
	if isValidationError(err) {
		writeError(w, "At least one non-empty field must be provided for update", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, "Could not update project", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProject removes a project and returns the deleted entity. Chats
// referencing it keep their dangling reference.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	deleted, err := h.ProjectService.DeleteProject(r.Context(), projectID)
	if errors.Is(err, project.ErrProjectNotFound) {
		writeError(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, "Could not delete project", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}
