package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/scribo/internal/models"
)

func seedPost(t *testing.T, env *testEnv) *models.Post {
	t.Helper()
	user := env.seedUser(t)
	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, env.store.PostStorage().CreatePost(context.Background(), post))
	return post
}

func TestCreateCommentHandler(t *testing.T) {
	env := newTestEnv()
	seedPost(t, env)

	rec := doJSON(env.comment.CreateCommentHandler, "POST", "/comments", `{"post_id":1,"body":"Nice post"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var comment models.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))
	assert.Equal(t, int64(1), comment.ID)
}

func TestCreateCommentHandler_UnknownPost(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(env.comment.CreateCommentHandler, "POST", "/comments", `{"post_id":99,"body":"Nice post"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCommentHandler_NotFound(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(env.comment.GetCommentHandler, "GET", "/comments/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment not found")
}

func TestUpdateCommentHandler(t *testing.T) {
	env := newTestEnv()
	post := seedPost(t, env)

	comment := &models.Comment{PostID: post.ID, Body: "Nice post"}
	require.NoError(t, env.store.CommentStorage().CreateComment(context.Background(), comment))

	rec := doJSON(env.comment.UpdateCommentHandler, "PUT", "/comments/1", `{"post_id":1,"body":"Edited"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Edited", got.Body)
}

func TestDeleteCommentHandler(t *testing.T) {
	env := newTestEnv()
	post := seedPost(t, env)

	comment := &models.Comment{PostID: post.ID, Body: "Nice post"}
	require.NoError(t, env.store.CommentStorage().CreateComment(context.Background(), comment))

	rec := doJSON(env.comment.DeleteCommentHandler, "DELETE", "/comments/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
