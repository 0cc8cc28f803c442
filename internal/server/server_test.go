package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/app"
	"github.com/ternarybob/scribo/internal/common"
	"github.com/ternarybob/scribo/internal/handlers"
	"github.com/ternarybob/scribo/internal/services/comments"
	"github.com/ternarybob/scribo/internal/services/posts"
	"github.com/ternarybob/scribo/internal/services/status"
	"github.com/ternarybob/scribo/internal/services/users"
	"github.com/ternarybob/scribo/internal/storage/memory"
)

func newTestServer(config *common.Config) *Server {
	store := memory.NewManager()
	logger := arbor.NewLogger()

	userSvc := users.NewService(store.UserStorage(), store.PostStorage(), logger)
	postSvc := posts.NewService(store.PostStorage(), store.UserStorage(), store.CommentStorage(), logger)
	commentSvc := comments.NewService(store.CommentStorage(), store.PostStorage(), logger)
	statusSvc := status.NewService(store, &config.Stats, logger)

	application := &app.App{
		Config:         config,
		Logger:         logger,
		StorageManager: store,
		UserService:    userSvc,
		PostService:    postSvc,
		CommentService: commentSvc,
		StatusService:  statusSvc,
		APIHandler:     handlers.NewAPIHandler(store),
		UserHandler:    handlers.NewUserHandler(userSvc, logger),
		PostHandler:    handlers.NewPostHandler(postSvc, logger),
		CommentHandler: handlers.NewCommentHandler(commentSvc, logger),
		StatusHandler:  handlers.NewStatusHandler(statusSvc, logger),
	}

	return New(application)
}

func serve(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestRouting_UserLifecycle(t *testing.T) {
	s := newTestServer(common.NewDefaultConfig())

	rec := serve(s, "POST", "/users", `{"name":"Alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(s, "GET", "/users/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(s, "GET", "/users/1/posts", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(s, "PUT", "/users/1", `{"name":"Alice B","email":"alice@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(s, "DELETE", "/users/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouting_PostAndComment(t *testing.T) {
	s := newTestServer(common.NewDefaultConfig())

	require.Equal(t, http.StatusCreated, serve(s, "POST", "/users", `{"name":"Alice","email":"alice@example.com"}`).Code)
	require.Equal(t, http.StatusCreated, serve(s, "POST", "/posts", `{"user_id":1,"title":"Hello","body":"First post"}`).Code)
	require.Equal(t, http.StatusCreated, serve(s, "POST", "/comments", `{"post_id":1,"body":"Nice post"}`).Code)

	assert.Equal(t, http.StatusOK, serve(s, "GET", "/posts/1/comments", "").Code)
	assert.Equal(t, http.StatusOK, serve(s, "GET", "/comments/1", "").Code)
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	s := newTestServer(common.NewDefaultConfig())

	assert.Equal(t, http.StatusMethodNotAllowed, serve(s, "PATCH", "/users", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(s, "POST", "/users/1/posts", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(s, "PATCH", "/comments/1", "").Code)
}

func TestRouting_SystemEndpoints(t *testing.T) {
	s := newTestServer(common.NewDefaultConfig())

	rec := serve(s, "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = serve(s, "GET", "/api/version", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(s, "GET", "/api/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"users":0`)
}

func TestRouting_UnknownPath(t *testing.T) {
	s := newTestServer(common.NewDefaultConfig())

	rec := serve(s, "GET", "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")
}

func TestMiddleware_RequestIDAndCORS(t *testing.T) {
	s := newTestServer(common.NewDefaultConfig())

	rec := serve(s, "GET", "/users", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(s, "OPTIONS", "/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_RateLimit(t *testing.T) {
	config := common.NewDefaultConfig()
	config.RateLimit.Enabled = true
	config.RateLimit.RequestsPerSecond = 0.001
	config.RateLimit.Burst = 1

	s := newTestServer(config)

	assert.Equal(t, http.StatusOK, serve(s, "GET", "/users", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(s, "GET", "/users", "").Code)
}

func TestMiddleware_Recovery(t *testing.T) {
	s := newTestServer(common.NewDefaultConfig())

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/panic", nil)
	s.recoveryMiddleware(panicking).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
