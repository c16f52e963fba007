package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pradiptars/stockpoint-be/internal/auth"
	"github.com/pradiptars/stockpoint-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login, token introspection, and password changes.
type AuthHandler struct {
	service services.AuthServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordPayload defines the structure for password change requests.
type ChangePasswordPayload struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.service.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			fail(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Login failed")
		fail(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"success": true,
		"data":    user,
		"token":   token,
	})
}

// Authenticated reports the claims of the token that admitted the request.
// The route sits behind the gate, so the claims are already decoded and in
// the request context.
func (h *AuthHandler) Authenticated(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		fail(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": true,
		"data":   claims,
	})
}

// ChangePassword re-verifies the old password and stores a new hash.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var payload ChangePasswordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.service.ChangePassword(payload.Username, payload.OldPassword, payload.NewPassword)
	switch {
	case err == nil:
		successMessage(w, http.StatusOK, "Password updated successfully")
	case errors.Is(err, services.ErrWrongPassword):
		fail(w, http.StatusForbidden, services.ErrWrongPassword.Error())
	case errors.Is(err, services.ErrPasswordUpdate):
		fail(w, http.StatusForbidden, services.ErrPasswordUpdate.Error())
	case errors.Is(err, services.ErrUserNotFound):
		fail(w, http.StatusNotFound, services.ErrUserNotFound.Error())
	default:
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to change password")
		fail(w, http.StatusInternalServerError, "Failed to change password")
	}
}
