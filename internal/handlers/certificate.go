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

// CertificateHandler provides HTTP handlers for certificates.
type CertificateHandler struct {
	certificateService *services.CertificateService
}

func NewCertificateHandler(certificateService *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

// CertificateRouter registers certificate routes on the given router.
func CertificateRouter(r chi.Router, certificateService *services.CertificateService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewCertificateHandler(certificateService)

	r.Get("/", handler.ListCertificates)
	r.With(authMiddleware).Post("/", handler.CreateCertificate)
	r.Route("/{certificateID}", func(r chi.Router) {
		r.Get("/", handler.GetCertificate)
		r.With(authMiddleware).Put("/", handler.UpdateCertificate)
		r.With(authMiddleware).Delete("/", handler.DeleteCertificate)
	})
}

func (h *CertificateHandler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching certificates")
		return
	}
	writeJSON(w, http.StatusOK, certificates)
}

func (h *CertificateHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "certificateID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid certificate id")
		return
	}

	certificate, err := h.certificateService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Certificate not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching certificate")
		return
	}

	writeJSON(w, http.StatusOK, certificate)
}

func (h *CertificateHandler) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	var certificate types.Certificate
	if err := json.NewDecoder(r.Body).Decode(&certificate); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.certificateService.Create(r.Context(), certificate)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Error adding certificate", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// CertificateUpdateRequest carries a partial certificate update.
type CertificateUpdateRequest struct {
	Title  *string    `json:"title"`
	Issuer *string    `json:"issuer"`
	Date   *time.Time `json:"date"`
	Img    *string    `json:"img"`
}

func (h *CertificateHandler) UpdateCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "certificateID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid certificate id")
		return
	}

	var req CertificateUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	certificate, err := h.certificateService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Certificate not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating certificate")
		return
	}

	if req.Title != nil {
		certificate.Title = *req.Title
	}
	if req.Issuer != nil {
		certificate.Issuer = *req.Issuer
	}
	if req.Date != nil {
		certificate.Date = *req.Date
	}
	if req.Img != nil {
		certificate.Img = *req.Img
	}

	updated, err := h.certificateService.Update(r.Context(), certificate)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Certificate not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating certificate")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *CertificateHandler) DeleteCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "certificateID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid certificate id")
		return
	}

	if err := h.certificateService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Certificate not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting certificate")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Certificate deleted successfully"})
}
