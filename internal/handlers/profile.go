package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/types"
	"github.com/go-chi/chi/v5"
)

const (
	maxResumeBytes     = 5 << 20
	maxMultipartMemory = 8 << 20
	formFieldResume    = "resume"
	pdfContentType     = "application/pdf"
)

// ProfileHandler provides HTTP handlers for the profile singleton and
// resume uploads.
type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRouter registers profile routes on the given router.
func ProfileRouter(r chi.Router, profileService *services.ProfileService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewProfileHandler(profileService)

	r.Get("/", handler.GetProfile)
	r.With(authMiddleware).Put("/", handler.UpdateProfile)
	r.With(authMiddleware).Post("/resume", handler.UploadResume)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch types.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.Update(r.Context(), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UploadResumeResponse confirms a stored resume and carries its URL.
type UploadResumeResponse struct {
	Message   string `json:"message"`
	ResumeURL string `json:"resumeUrl"`
}

// UploadResume accepts a single PDF under the "resume" form field,
// stores it, and writes its public URL onto the profile. Type and size
// are checked before the blob store is touched.
func (h *ProfileHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "No resume file uploaded")
		return
	}

	fileHeader, err := resumeFileHeader(r.MultipartForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !isPDF(fileHeader) {
		writeError(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}
	if fileHeader.Size > maxResumeBytes {
		writeError(w, http.StatusBadRequest, "Resume file too large (max 5 MB)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer file.Close()

	resumeURL, err := h.profileService.UploadResume(r.Context(), file, fileHeader.Size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, UploadResumeResponse{
		Message:   "Resume uploaded successfully",
		ResumeURL: resumeURL,
	})
}

func resumeFileHeader(form *multipart.Form) (*multipart.FileHeader, error) {
	if form == nil {
		return nil, errors.New("No resume file uploaded")
	}

	files := form.File[formFieldResume]
	if len(files) == 0 {
		return nil, errors.New("No resume file uploaded")
	}
	if len(files) > 1 {
		return nil, errors.New("Only one resume file is allowed")
	}
	return files[0], nil
}

func isPDF(fileHeader *multipart.FileHeader) bool {
	if strings.EqualFold(fileHeader.Header.Get("Content-Type"), pdfContentType) {
		return true
	}
	return strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf")
}
