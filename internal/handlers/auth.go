package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Tokens expire one day after issuance. There is no revocation; a
// compromised token stays valid until expiry.
const defaultTokenTTL = 24 * time.Hour

const (
	msgNoToken            = "Not authorized, no token"
	msgTokenFailed        = "Not authorized, token failed"
	msgUserNotFound       = "User not found"
	msgInvalidCredentials = "Invalid credentials"
)

// AuthHandler provides the admin login endpoint and the auth middleware.
type AuthHandler struct {
	adminService *services.AdminService
	secret       []byte
	tokenTTL     time.Duration
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(adminService *services.AdminService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
		secret:       []byte(jwtSecret),
		tokenTTL:     defaultTokenTTL,
	}
}

// AuthRouter registers the admin auth routes on the given router.
func AuthRouter(r chi.Router, adminService *services.AdminService, jwtSecret string) {
	handler := NewAuthHandler(adminService, jwtSecret)

	r.Post("/login", handler.Login)
}

// RequireAuth enforces a valid bearer token identifying an existing
// administrator. The resolved admin (without the password hash) is
// attached to the request context.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return requireAuth(h.adminService, h.secret)(next)
}

// RequireAuth constructs strict auth middleware for other routers.
func RequireAuth(adminService *services.AdminService, jwtSecret string) func(http.Handler) http.Handler {
	return requireAuth(adminService, []byte(jwtSecret))
}

// OptionalAuth attempts the same verification as RequireAuth but never
// rejects: on any failure the request proceeds without an identity.
// Downstream handlers use adminFromContext to pick the public or admin
// variant of a response.
func OptionalAuth(adminService *services.AdminService, jwtSecret string) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := resolveAdmin(r, adminService, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), contextAdminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requireAuth(adminService *services.AdminService, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := bearerToken(r); err != nil {
				writeError(w, http.StatusUnauthorized, msgNoToken)
				return
			}

			admin, err := resolveAdmin(r, adminService, secret)
			if err != nil {
				if errors.Is(err, errAdminGone) {
					writeError(w, http.StatusUnauthorized, msgUserNotFound)
					return
				}
				writeError(w, http.StatusUnauthorized, msgTokenFailed)
				return
			}

			ctx := context.WithValue(r.Context(), contextAdminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// errAdminGone marks a valid token whose administrator no longer exists.
var errAdminGone = errors.New("administrator not found")

func resolveAdmin(r *http.Request, adminService *services.AdminService, secret []byte) (types.Admin, error) {
	tokenString, err := bearerToken(r)
	if err != nil {
		return types.Admin{}, err
	}

	adminID, err := parseTokenSubject(tokenString, secret)
	if err != nil {
		return types.Admin{}, err
	}

	admin, err := adminService.GetByID(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Admin{}, errAdminGone
		}
		return types.Admin{}, err
	}

	admin.PasswordHash = ""
	return admin, nil
}

// Login verifies admin credentials and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, err := h.adminService.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, err := issueToken(admin.ID, h.secret, h.tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func issueToken(adminID int, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(adminID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseTokenSubject(tokenString string, secret []byte) (int, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}
	subject, err := strconv.Atoi(strings.TrimSpace(claims.Subject))
	if err != nil || subject < 1 {
		return 0, errors.New("invalid subject")
	}
	return subject, nil
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
