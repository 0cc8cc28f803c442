package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/models"
	"github.com/ternarybob/scribo/internal/services/posts"
)

// PostHandler handles HTTP requests for post management
type PostHandler struct {
	postService *posts.Service
	logger      arbor.ILogger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *posts.Service, logger arbor.ILogger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ListPostsHandler handles GET /posts
func (h *PostHandler) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	list, err := h.postService.ListPosts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list posts")
		WriteError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	if list == nil {
		list = []*models.Post{}
	}

	WriteJSON(w, http.StatusOK, list)
}

// GetPostHandler handles GET /posts/{id}
func (h *PostHandler) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/posts/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "Post not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to get post")
			WriteError(w, http.StatusInternalServerError, "Failed to get post")
		}
		return
	}

	WriteJSON(w, http.StatusOK, post)
}

// CreatePostHandler handles POST /posts
func (h *PostHandler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode request body")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.postService.CreatePost(r.Context(), &post); err != nil {
		switch {
		case IsValidationError(err), IsInvalidReference(err):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("Failed to create post")
			WriteError(w, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}

	WriteJSON(w, http.StatusCreated, post)
}

// UpdatePostHandler handles PUT /posts/{id}
func (h *PostHandler) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "PUT") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/posts/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode request body")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post.ID = id

	if err := h.postService.UpdatePost(r.Context(), &post); err != nil {
		switch {
		case IsNotFound(err):
			WriteError(w, http.StatusNotFound, "Post not found")
		case IsValidationError(err), IsInvalidReference(err):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to update post")
			WriteError(w, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	WriteJSON(w, http.StatusOK, post)
}

// DeletePostHandler handles DELETE /posts/{id}
func (h *PostHandler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "DELETE") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/posts/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "Post not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete post")
			WriteError(w, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPostCommentsHandler handles GET /posts/{id}/comments
func (h *PostHandler) GetPostCommentsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id, err := parseIDFromPath(strings.TrimSuffix(r.URL.Path, "/comments"), "/posts/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.postService.GetPostComments(r.Context(), id)
	if err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "Post not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to get post comments")
			WriteError(w, http.StatusInternalServerError, "Failed to get post comments")
		}
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
