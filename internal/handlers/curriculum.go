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

// CurriculumHandler provides HTTP handlers for education and experience.
type CurriculumHandler struct {
	curriculumService *services.CurriculumService
}

func NewCurriculumHandler(curriculumService *services.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService}
}

// CurriculumRouter registers curriculum routes: a public combined read
// and gated mutations for education and experience entries.
func CurriculumRouter(r chi.Router, curriculumService *services.CurriculumService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewCurriculumHandler(curriculumService)

	r.Get("/", handler.GetCurriculum)

	r.Route("/education", func(r chi.Router) {
		r.With(authMiddleware).Post("/", handler.AddEducation)
		r.With(authMiddleware).Put("/{educationID}", handler.UpdateEducation)
		r.With(authMiddleware).Delete("/{educationID}", handler.DeleteEducation)
	})
	r.Route("/experience", func(r chi.Router) {
		r.With(authMiddleware).Post("/", handler.AddExperience)
		r.With(authMiddleware).Put("/{experienceID}", handler.UpdateExperience)
		r.With(authMiddleware).Delete("/{experienceID}", handler.DeleteExperience)
	})
}

func (h *CurriculumHandler) GetCurriculum(w http.ResponseWriter, r *http.Request) {
	curriculum, err := h.curriculumService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch curriculum")
		return
	}
	writeJSON(w, http.StatusOK, curriculum)
}

func (h *CurriculumHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	var entry types.Education
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.curriculumService.AddEducation(r.Context(), entry)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to add education", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// EducationUpdateRequest carries a partial education update.
type EducationUpdateRequest struct {
	Degree      *string `json:"degree"`
	Year        *string `json:"year"`
	Institution *string `json:"institution"`
	Details     *string `json:"details"`
}

func (h *CurriculumHandler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "educationID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid education id")
		return
	}

	var req EducationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.curriculumService.GetEducation(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Education not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update education")
		return
	}

	if req.Degree != nil {
		entry.Degree = *req.Degree
	}
	if req.Year != nil {
		entry.Year = *req.Year
	}
	if req.Institution != nil {
		entry.Institution = *req.Institution
	}
	if req.Details != nil {
		entry.Details = *req.Details
	}

	updated, err := h.curriculumService.UpdateEducation(r.Context(), entry)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Education not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update education")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *CurriculumHandler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "educationID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid education id")
		return
	}

	if err := h.curriculumService.DeleteEducation(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Education not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete education")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Education removed"})
}

func (h *CurriculumHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	var entry types.Experience
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.curriculumService.AddExperience(r.Context(), entry)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to add experience", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ExperienceUpdateRequest carries a partial experience update.
type ExperienceUpdateRequest struct {
	Title   *string `json:"title"`
	Years   *string `json:"years"`
	Tech    *string `json:"tech"`
	Details *string `json:"details"`
}

func (h *CurriculumHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "experienceID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid experience id")
		return
	}

	var req ExperienceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.curriculumService.GetExperience(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Experience not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update experience")
		return
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Years != nil {
		entry.Years = *req.Years
	}
	if req.Tech != nil {
		entry.Tech = *req.Tech
	}
	if req.Details != nil {
		entry.Details = *req.Details
	}

	updated, err := h.curriculumService.UpdateExperience(r.Context(), entry)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Experience not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update experience")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *CurriculumHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "experienceID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid experience id")
		return
	}

	if err := h.curriculumService.DeleteExperience(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Experience not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete experience")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Experience removed"})
}
