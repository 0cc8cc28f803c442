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

func TestCreatePostHandler(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t)

	rec := doJSON(env.post.CreatePostHandler, "POST", "/posts", `{"user_id":1,"title":"Hello","body":"First post"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, int64(1), post.UserID)
}

func TestCreatePostHandler_UnknownUser(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(env.post.CreatePostHandler, "POST", "/posts", `{"user_id":99,"title":"Hello","body":"First post"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid reference")
}

func TestGetPostHandler_NotFound(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(env.post.GetPostHandler, "GET", "/posts/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post not found")
}

func TestUpdatePostHandler(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t)

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, env.store.PostStorage().CreatePost(context.Background(), post))

	rec := doJSON(env.post.UpdatePostHandler, "PUT", "/posts/1", `{"user_id":1,"title":"Hello again","body":"Edited"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Hello again", got.Title)
}

func TestDeletePostHandler(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t)

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, env.store.PostStorage().CreatePost(context.Background(), post))

	rec := doJSON(env.post.DeletePostHandler, "DELETE", "/posts/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetPostCommentsHandler(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t)
	ctx := context.Background()

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, env.store.PostStorage().CreatePost(ctx, post))

	comment := &models.Comment{PostID: post.ID, Body: "Nice post"}
	require.NoError(t, env.store.CommentStorage().CreateComment(ctx, comment))

	rec := doJSON(env.post.GetPostCommentsHandler, "GET", "/posts/1/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PostComments
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, post.ID, got.Post.ID)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Nice post", got.Comments[0].Body)
}

func TestGetPostCommentsHandler_EmptyList(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t)

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, env.store.PostStorage().CreatePost(context.Background(), post))

	rec := doJSON(env.post.GetPostCommentsHandler, "GET", "/posts/1/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PostComments
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotNil(t, got.Comments)
	assert.Empty(t, got.Comments)
}

func TestGetPostCommentsHandler_PostNotFound(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(env.post.GetPostCommentsHandler, "GET", "/posts/99/comments", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
