// Package todos provides database operations for todo items.
package todos

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/plakhov/taskboard/internal/entities"
)

// DefaultTitle is used when a todo is created without a title.
const DefaultTitle = "Empty todo"

const (
	MinTitleLength = 1
	MaxTitleLength = 15
)

var (
	ErrNotFound     = errors.New("todo not found")
	ErrTitleInvalid = errors.New("title must be 1-15 characters")
)

// UpdateFields carries a partial update; nil fields are left unchanged.
type UpdateFields struct {
	Title     *string
	Completed *bool
	DueAt     *time.Time
}

// Repository handles all todo database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new todos repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a todo owned by ownerID. An empty title falls back to
// DefaultTitle and the due timestamp is set to the creation time.
func (r *Repository) Create(title string, ownerID uint) (*entities.Todo, error) {
	if title == "" {
		title = DefaultTitle
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	todo := &entities.Todo{
		Title:   title,
		DueAt:   time.Now(),
		OwnerID: ownerID,
	}

	if err := r.db.Create(todo).Error; err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// ListForOwner returns all todos belonging to ownerID.
func (r *Repository) ListForOwner(ownerID uint) ([]entities.Todo, error) {
	var todos []entities.Todo
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&todos).Error
	return todos, err
}

// GetForOwner retrieves a single todo by primary key, scoped to ownerID.
func (r *Repository) GetForOwner(id, ownerID uint) (*entities.Todo, error) {
	var todo entities.Todo
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Update merges the provided fields into an existing todo. The todo must
// belong to ownerID; foreign todos are reported as not found.
func (r *Repository) Update(id, ownerID uint, fields UpdateFields) (*entities.Todo, error) {
	todo, err := r.GetForOwner(id, ownerID)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil {
		if err := validateTitle(*fields.Title); err != nil {
			return nil, err
		}
		todo.Title = *fields.Title
	}
	if fields.Completed != nil {
		todo.Completed = *fields.Completed
	}
	if fields.DueAt != nil {
		todo.DueAt = *fields.DueAt
	}

	if err := r.db.Save(todo).Error; err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

func validateTitle(title string) error {
	if len(title) < MinTitleLength || len(title) > MaxTitleLength {
		return ErrTitleInvalid
	}
	return nil
}
