package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/plakhov/taskboard/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses. HSTS self-gates on the
	// request scheme, so it is safe behind a plain-HTTP dev server too.
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(auth.StrictTransportSecurityMiddleware())

	// Permissive CORS, matching the browser clients this API serves
	router.Use(cors.Default())

	health := NewHealthController(cfg.Database, cfg.Version)
	authController := auth.NewController(cfg.AuthService)
	todosController := NewTodosController(cfg.TodoStore)
	boardsController := NewBoardsController(cfg.BoardStore)

	// Public routes
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello World!")
	})
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.POST("/signup", authController.Signup)
	router.POST("/login", authController.Login)

	// Protected routes behind the Bearer gate
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.Handler())

	protected.GET("/todos", todosController.ListTodos)
	protected.POST("/todos", todosController.CreateTodo)
	protected.GET("/todos/:id", todosController.GetTodo)
	protected.POST("/todos/:id", todosController.UpdateTodo)

	protected.GET("/boards", boardsController.ListBoards)
	protected.POST("/boards", boardsController.CreateBoard)
	protected.POST("/boards/:id/todos", boardsController.AttachTodo)

	return router
}
