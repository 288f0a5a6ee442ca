package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
	"github.com/go-chi/chi/v5"
)

// ContactHandler provides HTTP handlers for contact-form messages.
type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRouter registers contact routes on the given router. Submission
// is public; reading and deleting messages is admin-only.
func ContactRouter(r chi.Router, contactService *services.ContactService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewContactHandler(contactService)

	r.Post("/", handler.CreateContact)
	r.With(authMiddleware).Get("/", handler.ListContacts)
	r.With(authMiddleware).Delete("/{contactID}", handler.DeleteContact)
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var message types.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message.Name = strings.TrimSpace(message.Name)
	message.Email = strings.TrimSpace(message.Email)
	if message.Name == "" || message.Email == "" || strings.TrimSpace(message.Message) == "" {
		writeError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	if _, err := h.contactService.Create(r.Context(), message); err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating contact")
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Contact created successfully"})
}

func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching contacts")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "contactID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact id")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting contact")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Contact deleted successfully"})
}
