package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"unicode"

	"github.com/rs/zerolog"

	"luxurydrives/internal/middleware"
	"luxurydrives/internal/models"
	"luxurydrives/internal/session"
	"luxurydrives/internal/store"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type AuthHandler struct {
	sessions *session.Manager
	store    *store.Store
	logger   zerolog.Logger
}

func NewAuthHandler(sessions *session.Manager, st *store.Store, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		store:    st,
		logger:   logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if msg, ok := validateRegistration(&req); !ok {
		respondWithError(w, http.StatusBadRequest, "validation_failed", msg)
		return
	}

	if !h.sessions.Register(req.Name, req.Email, req.Password) {
		respondWithError(w, http.StatusConflict, "registration_failed", "An account with this email already exists")
		return
	}

	h.respondWithSession(w, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		respondWithError(w, http.StatusBadRequest, "validation_failed", "Please enter a valid email")
		return
	}
	if req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "validation_failed", "Password is required")
		return
	}

	if !h.sessions.Login(req.Email, req.Password) {
		respondWithError(w, http.StatusUnauthorized, "authentication_failed", "Invalid email or password")
		return
	}

	h.respondWithSession(w, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me resolves the authenticated account from the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	acc, ok := h.store.AccountByID(userID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "account_not_found", "Account not found")
		return
	}

	respondWithJSON(w, http.StatusOK, acc)
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, code int) {
	acc, ok := h.sessions.Current()
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "session_missing", "Session was not established")
		return
	}
	token, _ := h.sessions.Token()
	respondWithJSON(w, code, models.AuthResponse{
		User:  &acc,
		Token: token,
	})
}

// validateRegistration mirrors the registration form rules: a name, a
// plausible email, and a password of at least six characters mixing upper
// case, lower case, and digits.
func validateRegistration(req *models.RegisterRequest) (string, bool) {
	if req.Name == "" {
		return "Name is required", false
	}
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		return "Please enter a valid email", false
	}
	if len(req.Password) < 6 {
		return "Password must be at least 6 characters", false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, c := range req.Password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "Password must contain upper case, lower case, and a number", false
	}
	return "", true
}
