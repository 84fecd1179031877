package http

import (
	"github.com/plakhov/taskboard/internal/auth"
	"github.com/plakhov/taskboard/internal/database"
	"github.com/plakhov/taskboard/internal/database/boards"
	"github.com/plakhov/taskboard/internal/database/todos"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database   *database.Database
	TodoStore  *todos.Repository
	BoardStore *boards.Repository

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware

	// Application info
	Version string
}
