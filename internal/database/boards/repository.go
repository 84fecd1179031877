// Package boards provides database operations for boards grouping todos.
package boards

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/plakhov/taskboard/internal/entities"
)

const (
	MinTitleLength = 4
	MaxTitleLength = 15
)

var (
	ErrNotFound     = errors.New("board not found")
	ErrTodoNotFound = errors.New("todo not found")
	ErrTitleInvalid = errors.New("title must be 4-15 characters")
)

// Repository handles all board database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new boards repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a board owned by ownerID.
func (r *Repository) Create(title string, ownerID uint) (*entities.Board, error) {
	if len(title) < MinTitleLength || len(title) > MaxTitleLength {
		return nil, ErrTitleInvalid
	}

	board := &entities.Board{
		Title:   title,
		OwnerID: ownerID,
	}

	if err := r.db.Create(board).Error; err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// ListForOwner returns all boards belonging to ownerID with their todos.
func (r *Repository) ListForOwner(ownerID uint) ([]entities.Board, error) {
	var boards []entities.Board
	err := r.db.Preload("Todos").Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&boards).Error
	return boards, err
}

// GetForOwner retrieves a single board by primary key, scoped to ownerID.
func (r *Repository) GetForOwner(id, ownerID uint) (*entities.Board, error) {
	var board entities.Board
	err := r.db.Preload("Todos").Where("id = ? AND owner_id = ?", id, ownerID).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

// AttachTodo appends a todo to a board. Both records must belong to ownerID.
func (r *Repository) AttachTodo(boardID, todoID, ownerID uint) (*entities.Board, error) {
	board, err := r.GetForOwner(boardID, ownerID)
	if err != nil {
		return nil, err
	}

	var todo entities.Todo
	err = r.db.Where("id = ? AND owner_id = ?", todoID, ownerID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	if err := r.db.Model(board).Association("Todos").Append(&todo); err != nil {
		return nil, fmt.Errorf("failed to attach todo to board: %w", err)
	}

	return r.GetForOwner(boardID, ownerID)
}
