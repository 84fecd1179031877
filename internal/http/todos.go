package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plakhov/taskboard/internal/database/todos"
)

type TodosController struct {
	store *todos.Repository
}

func NewTodosController(store *todos.Repository) *TodosController {
	return &TodosController{store: store}
}

type CreateTodoRequest struct {
	Title string `json:"title"`
}

type UpdateTodoRequest struct {
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	DueAt     *time.Time `json:"due_at"`
}

// ListTodos returns all todos owned by the caller.
func (controller *TodosController) ListTodos(c *gin.Context) {
	items, err := controller.store.ListForOwner(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list todos")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTodo returns a single todo owned by the caller.
func (controller *TodosController) GetTodo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	todo, err := controller.store.GetForOwner(id, GetUserID(c))
	if err != nil {
		if errors.Is(err, todos.ErrNotFound) {
			respondNotFound(c, "todo")
			return
		}
		respondInternalError(c, err, "get todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodo creates a todo owned by the caller. The title is optional and
// defaults to a placeholder.
func (controller *TodosController) CreateTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBadRequest(c, "invalid request body")
		return
	}

	todo, err := controller.store.Create(req.Title, GetUserID(c))
	if err != nil {
		if errors.Is(err, todos.ErrTitleInvalid) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodo merges the provided fields into a todo owned by the caller.
func (controller *TodosController) UpdateTodo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	todo, err := controller.store.Update(id, GetUserID(c), todos.UpdateFields{
		Title:     req.Title,
		Completed: req.Completed,
		DueAt:     req.DueAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, todos.ErrNotFound):
			respondNotFound(c, "todo")
		case errors.Is(err, todos.ErrTitleInvalid):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "update todo")
		}
		return
	}
	c.JSON(http.StatusOK, todo)
}
