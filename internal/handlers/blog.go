package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
	"github.com/go-chi/chi/v5"
)

// BlogHandler provides HTTP handlers for blog posts.
type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogRouter registers blog routes on the given router.
func BlogRouter(r chi.Router, blogService *services.BlogService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewBlogHandler(blogService)

	r.Get("/", handler.ListBlogs)
	r.With(authMiddleware).Post("/", handler.CreateBlog)
	r.Route("/{blogID}", func(r chi.Router) {
		r.Get("/", handler.GetBlog)
		r.With(authMiddleware).Put("/", handler.UpdateBlog)
		r.With(authMiddleware).Delete("/", handler.DeleteBlog)
	})
}

func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching blogs")
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "blogID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	blog, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching blog")
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var blog types.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.blogService.Create(r.Context(), blog)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Error adding blog", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// BlogUpdateRequest carries a partial blog update.
type BlogUpdateRequest struct {
	Image       *string    `json:"image"`
	Title       *string    `json:"title"`
	Author      *string    `json:"author"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "blogID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var req BlogUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating blog")
		return
	}

	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.Date != nil {
		blog.Date = *req.Date
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}

	updated, err := h.blogService.Update(r.Context(), blog)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating blog")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "blogID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting blog")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Blog deleted successfully"})
}
