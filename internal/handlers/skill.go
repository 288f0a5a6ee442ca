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

// SkillHandler provides HTTP handlers for skills.
type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// SkillRouter registers skill routes on the given router. The listing
// goes through the optional gate: anonymous callers get the reduced
// public view, an authenticated admin gets full records.
func SkillRouter(
	r chi.Router,
	skillService *services.SkillService,
	authMiddleware func(http.Handler) http.Handler,
	optionalAuthMiddleware func(http.Handler) http.Handler,
) {
	handler := NewSkillHandler(skillService)

	r.With(optionalAuthMiddleware).Get("/", handler.ListSkills)
	r.With(authMiddleware).Post("/", handler.CreateSkill)
	r.Route("/{skillID}", func(r chi.Router) {
		r.With(authMiddleware).Put("/", handler.UpdateSkill)
		r.With(authMiddleware).Delete("/", handler.DeleteSkill)
	})
}

func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching skills")
		return
	}

	if _, ok := adminFromContext(r.Context()); ok {
		writeJSON(w, http.StatusOK, skills)
		return
	}

	public := make([]types.PublicSkill, 0, len(skills))
	for _, skill := range skills {
		public = append(public, skill.Public())
	}
	writeJSON(w, http.StatusOK, public)
}

func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var skill types.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.skillService.Create(r.Context(), skill)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Error adding skill", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// SkillUpdateRequest carries a partial skill update.
type SkillUpdateRequest struct {
	Name     *string `json:"name"`
	Logo     *string `json:"logo"`
	Category *string `json:"category"`
}

func (h *SkillHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "skillID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid skill id")
		return
	}

	var req SkillUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill, err := h.skillService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Skill not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating skill")
		return
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Logo != nil {
		skill.Logo = *req.Logo
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}

	updated, err := h.skillService.Update(r.Context(), skill)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Skill not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating skill")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *SkillHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "skillID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid skill id")
		return
	}

	if err := h.skillService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Skill not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting skill")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Skill deleted successfully"})
}
