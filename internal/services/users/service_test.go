package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
	"github.com/ternarybob/scribo/internal/storage/memory"
)

func newTestService() (*Service, *memory.Manager) {
	store := memory.NewManager()
	svc := NewService(store.UserStorage(), store.PostStorage(), arbor.NewLogger())
	return svc, store
}

func TestCreateUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, svc.CreateUser(ctx, user))

	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestCreateUser_Invalid(t *testing.T) {
	svc, _ := newTestService()

	err := svc.CreateUser(context.Background(), &models.User{Name: "Alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateUser_PreservesCreatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, svc.CreateUser(ctx, user))
	created := user.CreatedAt

	time.Sleep(10 * time.Millisecond)

	updated := &models.User{ID: user.ID, Name: "Alice B", Email: "alice@example.com"}
	require.NoError(t, svc.UpdateUser(ctx, updated))

	assert.Equal(t, created, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created))
}

func TestUpdateUser_SameValues(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, svc.CreateUser(ctx, user))

	// Updating a row to identical values must not report not-found
	same := &models.User{ID: user.ID, Name: "Alice", Email: "alice@example.com"}
	assert.NoError(t, svc.UpdateUser(ctx, same))
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateUser(context.Background(), &models.User{ID: 99, Name: "Ghost", Email: "ghost@example.com"})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _ := newTestService()
	err := svc.DeleteUser(context.Background(), 99)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestGetUserPosts(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, svc.CreateUser(ctx, user))

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, store.PostStorage().CreatePost(ctx, post))

	result, err := svc.GetUserPosts(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.User.ID)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, post.ID, result.Posts[0].ID)
	assert.Equal(t, "Hello", result.Posts[0].Title)
}

func TestGetUserPosts_EmptyList(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, svc.CreateUser(ctx, user))

	result, err := svc.GetUserPosts(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, result.Posts)
	assert.Empty(t, result.Posts)
}

func TestGetUserPosts_UserNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.GetUserPosts(context.Background(), 42)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}
