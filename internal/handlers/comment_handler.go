package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/models"
	"github.com/ternarybob/scribo/internal/services/comments"
)

// CommentHandler handles HTTP requests for comment management
type CommentHandler struct {
	commentService *comments.Service
	logger         arbor.ILogger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *comments.Service, logger arbor.ILogger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// ListCommentsHandler handles GET /comments
func (h *CommentHandler) ListCommentsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	list, err := h.commentService.ListComments(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list comments")
		WriteError(w, http.StatusInternalServerError, "Failed to list comments")
		return
	}

	if list == nil {
		list = []*models.Comment{}
	}

	WriteJSON(w, http.StatusOK, list)
}

// GetCommentHandler handles GET /comments/{id}
func (h *CommentHandler) GetCommentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/comments/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentService.GetComment(r.Context(), id)
	if err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "Comment not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to get comment")
			WriteError(w, http.StatusInternalServerError, "Failed to get comment")
		}
		return
	}

	WriteJSON(w, http.StatusOK, comment)
}

// CreateCommentHandler handles POST /comments
func (h *CommentHandler) CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode request body")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.commentService.CreateComment(r.Context(), &comment); err != nil {
		switch {
		case IsValidationError(err), IsInvalidReference(err):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("Failed to create comment")
			WriteError(w, http.StatusInternalServerError, "Failed to create comment")
		}
		return
	}

	WriteJSON(w, http.StatusCreated, comment)
}

// UpdateCommentHandler handles PUT /comments/{id}
func (h *CommentHandler) UpdateCommentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "PUT") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/comments/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode request body")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment.ID = id

	if err := h.commentService.UpdateComment(r.Context(), &comment); err != nil {
		switch {
		case IsNotFound(err):
			WriteError(w, http.StatusNotFound, "Comment not found")
		case IsValidationError(err), IsInvalidReference(err):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to update comment")
			WriteError(w, http.StatusInternalServerError, "Failed to update comment")
		}
		return
	}

	WriteJSON(w, http.StatusOK, comment)
}

// DeleteCommentHandler handles DELETE /comments/{id}
func (h *CommentHandler) DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "DELETE") {
		return
	}

	id, err := parseIDFromPath(r.URL.Path, "/comments/")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		if IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "Comment not found")
		} else {
			h.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete comment")
			WriteError(w, http.StatusInternalServerError, "Failed to delete comment")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
