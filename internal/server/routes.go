package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Users
	mux.HandleFunc("/users", s.handleUsersRoute)
	mux.HandleFunc("/users/", s.handleUserRoutes)

	// Posts
	mux.HandleFunc("/posts", s.handlePostsRoute)
	mux.HandleFunc("/posts/", s.handlePostRoutes)

	// Comments
	mux.HandleFunc("/comments", s.handleCommentsRoute)
	mux.HandleFunc("/comments/", s.handleCommentRoutes)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/stats", s.app.StatusHandler.GetStatsHandler)

	// 404 handler for everything else
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// handleUsersRoute routes /users requests (list and create)
func (s *Server) handleUsersRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		s.app.UserHandler.ListUsersHandler(w, r)
	case "POST":
		s.app.UserHandler.CreateUserHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleUserRoutes routes /users/{id} and /users/{id}/posts requests
func (s *Server) handleUserRoutes(w http.ResponseWriter, r *http.Request) {
	// GET /users/{id}/posts
	if strings.HasSuffix(r.URL.Path, "/posts") {
		if r.Method == "GET" {
			s.app.UserHandler.GetUserPostsHandler(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.Method {
	case "GET":
		s.app.UserHandler.GetUserHandler(w, r)
	case "PUT":
		s.app.UserHandler.UpdateUserHandler(w, r)
	case "DELETE":
		s.app.UserHandler.DeleteUserHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePostsRoute routes /posts requests (list and create)
func (s *Server) handlePostsRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		s.app.PostHandler.ListPostsHandler(w, r)
	case "POST":
		s.app.PostHandler.CreatePostHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePostRoutes routes /posts/{id} and /posts/{id}/comments requests
func (s *Server) handlePostRoutes(w http.ResponseWriter, r *http.Request) {
	// GET /posts/{id}/comments
	if strings.HasSuffix(r.URL.Path, "/comments") {
		if r.Method == "GET" {
			s.app.PostHandler.GetPostCommentsHandler(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.Method {
	case "GET":
		s.app.PostHandler.GetPostHandler(w, r)
	case "PUT":
		s.app.PostHandler.UpdatePostHandler(w, r)
	case "DELETE":
		s.app.PostHandler.DeletePostHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleCommentsRoute routes /comments requests (list and create)
func (s *Server) handleCommentsRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		s.app.CommentHandler.ListCommentsHandler(w, r)
	case "POST":
		s.app.CommentHandler.CreateCommentHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleCommentRoutes routes /comments/{id} requests
func (s *Server) handleCommentRoutes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		s.app.CommentHandler.GetCommentHandler(w, r)
	case "PUT":
		s.app.CommentHandler.UpdateCommentHandler(w, r)
	case "DELETE":
		s.app.CommentHandler.DeleteCommentHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
