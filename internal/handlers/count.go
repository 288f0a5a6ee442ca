package handlers

import (
	"net/http"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
)

// CountHandler serves the admin dashboard record totals.
type CountHandler struct {
	countService *services.CountService
}

func NewCountHandler(countService *services.CountService) *CountHandler {
	return &CountHandler{countService: countService}
}

// CountRouter registers the counts route on the given router.
func CountRouter(r chi.Router, countService *services.CountService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewCountHandler(countService)

	r.With(authMiddleware).Get("/", handler.GetCounts)
}

func (h *CountHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.countService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching counts")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
