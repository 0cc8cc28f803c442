// Package memory provides an in-memory StorageManager used by tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

// Manager implements interfaces.StorageManager backed by maps
type Manager struct {
	mu          sync.Mutex
	users       map[int64]*models.User
	posts       map[int64]*models.Post
	comments    map[int64]*models.Comment
	nextUser    int64
	nextPost    int64
	nextComment int64
}

// NewManager creates an empty in-memory manager
func NewManager() *Manager {
	return &Manager{
		users:    make(map[int64]*models.User),
		posts:    make(map[int64]*models.Post),
		comments: make(map[int64]*models.Comment),
	}
}

func (m *Manager) UserStorage() interfaces.UserStorage       { return (*userStore)(m) }
func (m *Manager) PostStorage() interfaces.PostStorage       { return (*postStore)(m) }
func (m *Manager) CommentStorage() interfaces.CommentStorage { return (*commentStore)(m) }

func (m *Manager) Ping(ctx context.Context) error { return nil }
func (m *Manager) Close() error                   { return nil }

type userStore Manager

func (s *userStore) CreateUser(ctx context.Context, user *models.User) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextUser++
	user.ID = m.nextUser
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (s *userStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, interfaces.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (s *userStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []*models.User
	for _, u := range m.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *userStore) UpdateUser(ctx context.Context, user *models.User) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return fmt.Errorf("user %d: %w", user.ID, interfaces.ErrNotFound)
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (s *userStore) DeleteUser(ctx context.Context, id int64) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, interfaces.ErrNotFound)
	}
	delete(m.users, id)

	// Cascade like the MySQL schema does
	for pid, p := range m.posts {
		if p.UserID == id {
			delete(m.posts, pid)
			for cid, c := range m.comments {
				if c.PostID == pid {
					delete(m.comments, cid)
				}
			}
		}
	}
	return nil
}

func (s *userStore) CountUsers(ctx context.Context) (int, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), nil
}

type postStore Manager

func (s *postStore) CreatePost(ctx context.Context, post *models.Post) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextPost++
	post.ID = m.nextPost
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (s *postStore) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, interfaces.ErrNotFound)
	}
	copied := *post
	return &copied, nil
}

func (s *postStore) ListPosts(ctx context.Context) ([]*models.Post, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	var posts []*models.Post
	for _, p := range m.posts {
		copied := *p
		posts = append(posts, &copied)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (s *postStore) ListPostsByUser(ctx context.Context, userID int64) ([]*models.Post, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	var posts []*models.Post
	for _, p := range m.posts {
		if p.UserID == userID {
			copied := *p
			posts = append(posts, &copied)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (s *postStore) UpdatePost(ctx context.Context, post *models.Post) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[post.ID]; !ok {
		return fmt.Errorf("post %d: %w", post.ID, interfaces.ErrNotFound)
	}
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (s *postStore) DeletePost(ctx context.Context, id int64) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return fmt.Errorf("post %d: %w", id, interfaces.ErrNotFound)
	}
	delete(m.posts, id)

	for cid, c := range m.comments {
		if c.PostID == id {
			delete(m.comments, cid)
		}
	}
	return nil
}

func (s *postStore) CountPosts(ctx context.Context) (int, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts), nil
}

type commentStore Manager

func (s *commentStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextComment++
	comment.ID = m.nextComment
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (s *commentStore) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	comment, ok := m.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, interfaces.ErrNotFound)
	}
	copied := *comment
	return &copied, nil
}

func (s *commentStore) ListComments(ctx context.Context) ([]*models.Comment, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	var comments []*models.Comment
	for _, c := range m.comments {
		copied := *c
		comments = append(comments, &copied)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (s *commentStore) ListCommentsByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	var comments []*models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			copied := *c
			comments = append(comments, &copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (s *commentStore) UpdateComment(ctx context.Context, comment *models.Comment) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[comment.ID]; !ok {
		return fmt.Errorf("comment %d: %w", comment.ID, interfaces.ErrNotFound)
	}
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (s *commentStore) DeleteComment(ctx context.Context, id int64) error {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, interfaces.ErrNotFound)
	}
	delete(m.comments, id)
	return nil
}

func (s *commentStore) CountComments(ctx context.Context) (int, error) {
	m := (*Manager)(s)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.comments), nil
}
