package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler provides HTTP handlers for portfolio projects.
type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRouter registers project routes on the given router. Reads are
// public; every mutation goes through the auth middleware.
func ProjectRouter(r chi.Router, projectService *services.ProjectService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewProjectHandler(projectService)

	r.Get("/", handler.ListProjects)
	r.With(authMiddleware).Post("/", handler.CreateProject)
	r.Route("/{projectID}", func(r chi.Router) {
		r.Get("/", handler.GetProject)
		r.With(authMiddleware).Put("/", handler.UpdateProject)
		r.With(authMiddleware).Delete("/", handler.DeleteProject)
	})
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "projectID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching project")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project types.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.projectService.Create(r.Context(), project)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Error adding project", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ProjectUpdateRequest carries a partial project update. Nil fields are
// left untouched.
type ProjectUpdateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Tech         *[]string `json:"tech"`
	GithubLink   *string   `json:"githubLink"`
	LiveDemoLink *string   `json:"liveDemoLink"`
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "projectID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	var req ProjectUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating project")
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.Tech != nil {
		project.Tech = *req.Tech
	}
	if req.GithubLink != nil {
		project.GithubLink = *req.GithubLink
	}
	if req.LiveDemoLink != nil {
		project.LiveDemoLink = *req.LiveDemoLink
	}

	updated, err := h.projectService.Update(r.Context(), project)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating project")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "projectID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting project")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}
