package posts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
	"github.com/ternarybob/scribo/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, *models.User) {
	t.Helper()
	store := memory.NewManager()
	svc := NewService(store.PostStorage(), store.UserStorage(), store.CommentStorage(), arbor.NewLogger())

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, store.UserStorage().CreateUser(context.Background(), user))
	return svc, user
}

func TestCreatePost(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, svc.CreatePost(ctx, post))

	assert.NotZero(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePost_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	post := &models.Post{UserID: 99, Title: "Hello", Body: "First post"}
	err := svc.CreatePost(context.Background(), post)
	assert.ErrorIs(t, err, interfaces.ErrInvalidReference)
}

func TestCreatePost_Invalid(t *testing.T) {
	svc, user := newTestService(t)

	err := svc.CreatePost(context.Background(), &models.Post{UserID: user.ID, Title: "Hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdatePost_ChangedUserIsChecked(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, svc.CreatePost(ctx, post))

	moved := &models.Post{ID: post.ID, UserID: 99, Title: "Hello", Body: "First post"}
	err := svc.UpdatePost(ctx, moved)
	assert.ErrorIs(t, err, interfaces.ErrInvalidReference)
}

func TestUpdatePost_SameValues(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, svc.CreatePost(ctx, post))

	same := &models.Post{ID: post.ID, UserID: user.ID, Title: "Hello", Body: "First post"}
	assert.NoError(t, svc.UpdatePost(ctx, same))
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc, user := newTestService(t)

	err := svc.UpdatePost(context.Background(), &models.Post{ID: 99, UserID: user.ID, Title: "Hello", Body: "First post"})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestGetPostComments(t *testing.T) {
	store := memory.NewManager()
	svc := NewService(store.PostStorage(), store.UserStorage(), store.CommentStorage(), arbor.NewLogger())
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, store.UserStorage().CreateUser(ctx, user))

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, svc.CreatePost(ctx, post))

	comment := &models.Comment{PostID: post.ID, Body: "Nice post"}
	require.NoError(t, store.CommentStorage().CreateComment(ctx, comment))

	result, err := svc.GetPostComments(ctx, post.ID)
	require.NoError(t, err)

	assert.Equal(t, post.ID, result.Post.ID)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "Nice post", result.Comments[0].Body)
}

func TestGetPostComments_PostNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetPostComments(context.Background(), 42)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}
