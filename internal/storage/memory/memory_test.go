package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

func TestManager_CascadeDelete(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, m.UserStorage().CreateUser(ctx, user))

	post := &models.Post{UserID: user.ID, Title: "Hello", Body: "First post"}
	require.NoError(t, m.PostStorage().CreatePost(ctx, post))

	comment := &models.Comment{PostID: post.ID, Body: "Nice post"}
	require.NoError(t, m.CommentStorage().CreateComment(ctx, comment))

	require.NoError(t, m.UserStorage().DeleteUser(ctx, user.ID))

	_, err := m.PostStorage().GetPost(ctx, post.ID)
	assert.True(t, errors.Is(err, interfaces.ErrNotFound))

	_, err = m.CommentStorage().GetComment(ctx, comment.ID)
	assert.True(t, errors.Is(err, interfaces.ErrNotFound))
}

func TestManager_CopiesOnReadAndWrite(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, m.UserStorage().CreateUser(ctx, user))

	// Mutating the caller's struct must not leak into the store
	user.Name = "Mallory"

	got, err := m.UserStorage().GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	// Mutating a read result must not leak either
	got.Name = "Mallory"
	again, err := m.UserStorage().GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)
}

func TestManager_SequentialIDs(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		user := &models.User{Name: "User", Email: "user@example.com"}
		require.NoError(t, m.UserStorage().CreateUser(ctx, user))
		assert.Equal(t, int64(i), user.ID)
	}

	users, err := m.UserStorage().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, int64(1), users[0].ID)
}
