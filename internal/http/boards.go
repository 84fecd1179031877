package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plakhov/taskboard/internal/database/boards"
)

type BoardsController struct {
	store *boards.Repository
}

func NewBoardsController(store *boards.Repository) *BoardsController {
	return &BoardsController{store: store}
}

type CreateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

type AttachTodoRequest struct {
	TodoID uint `json:"todo_id" binding:"required"`
}

// ListBoards returns all boards owned by the caller, todos included.
func (controller *BoardsController) ListBoards(c *gin.Context) {
	items, err := controller.store.ListForOwner(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list boards")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateBoard creates a board owned by the caller.
func (controller *BoardsController) CreateBoard(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title is required")
		return
	}

	board, err := controller.store.Create(req.Title, GetUserID(c))
	if err != nil {
		if errors.Is(err, boards.ErrTitleInvalid) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create board")
		return
	}
	c.JSON(http.StatusOK, board)
}

// AttachTodo appends one of the caller's todos to one of the caller's boards.
func (controller *BoardsController) AttachTodo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AttachTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "todo_id is required")
		return
	}

	board, err := controller.store.AttachTodo(id, req.TodoID, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, boards.ErrNotFound):
			respondNotFound(c, "board")
		case errors.Is(err, boards.ErrTodoNotFound):
			respondNotFound(c, "todo")
		default:
			respondInternalError(c, err, "attach todo to board")
		}
		return
	}
	c.JSON(http.StatusOK, board)
}
