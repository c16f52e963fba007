package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pradiptars/stockpoint-be/internal/models"
	"github.com/pradiptars/stockpoint-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// Create handles new user creation.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(payload)
	if err != nil {
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to create user")
		fail(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	successData(w, http.StatusCreated, user)
}

// Update handles a partial update of a user's profile.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var payload models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(id, payload)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(w, http.StatusNotFound, services.ErrUserNotFound.Error())
			return
		}
		log.Error().Err(err).Int("user_id", id).Msg("Failed to update user")
		fail(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	successData(w, http.StatusOK, user)
}

// Delete handles the permanent deletion of a user account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("Failed to delete user")
		fail(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	successMessage(w, http.StatusOK, "User deleted successfully")
}

// SearchPaginate handles a paged search over usernames and full names.
func (h *UserHandler) SearchPaginate(w http.ResponseWriter, r *http.Request) {
	var body models.PaginationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	users, paginate, err := h.service.SearchPaginate(body)
	if err != nil {
		log.Error().Err(err).Str("term", body.Term).Msg("Failed to search users")
		fail(w, http.StatusInternalServerError, "Failed to search users")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"data":     users,
		"paginate": paginate,
	})
}
