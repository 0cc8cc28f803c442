package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/models"
	"github.com/ternarybob/scribo/internal/services/users"
)

// UserHandler handles HTTP requests for user management
type UserHandler struct {
	userService *users.Service
	logger      arbor.ILogger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *users.Service, logger arbor.ILogger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsersHandler handles GET /users
func (h *UserHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	list, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list users")
		WriteError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	// Return an array, never null
	if list == nil {
		list = []*models.User{}
	}

	WriteJSON(w, http.StatusOK, list)
}

// GetUserHandler handles GET /users/{id}
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/users/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "User not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to get user")
			WriteError(w, http.StatusInternalServerError, "Failed to get user")
		}
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// CreateUserHandler handles POST /users
func (h *UserHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode request body")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userService.CreateUser(r.Context(), &user); err != nil {
		if IsValidationError(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
		} else {
			h.logger.Error().Err(err).Msg("Failed to create user")
			WriteError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// UpdateUserHandler handles PUT /users/{id}
func (h *UserHandler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "PUT") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/users/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode request body")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Path wins over any ID in the body
	user.ID = id

	if err := h.userService.UpdateUser(r.Context(), &user); err != nil {
		switch {
		case IsNotFound(err):
			WriteError(w, http.StatusNotFound, "User not found")
		case IsValidationError(err):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to update user")
			WriteError(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// DeleteUserHandler handles DELETE /users/{id}
func (h *UserHandler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "DELETE") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/users/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "User not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete user")
			WriteError(w, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetUserPostsHandler handles GET /users/{id}/posts
func (h *UserHandler) GetUserPostsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id, err := parseIDFromPath(strings.TrimSuffix(r.URL.Path, "/posts"), "/users/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.userService.GetUserPosts(r.Context(), id)
	if err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "User not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to get user posts")
			WriteError(w, http.StatusInternalServerError, "Failed to get user posts")
		}
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
