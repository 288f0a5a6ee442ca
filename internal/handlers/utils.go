package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/devfolio/apiserver/types"
	"github.com/go-chi/chi/v5"
)

type contextKey string

const contextAdminKey contextKey = "admin"

// ErrorResponse is the JSON error payload. Error carries the underlying
// failure detail when a handler chooses to expose it.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is the JSON payload for operations that only confirm
// success.
type MessageResponse struct {
	Message string `json:"message"`
}

func adminFromContext(ctx context.Context) (types.Admin, bool) {
	admin, ok := ctx.Value(contextAdminKey).(types.Admin)
	return admin, ok
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeErrorDetail(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// Healthz is a liveness probe.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
