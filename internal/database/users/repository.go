// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByEmail("a@b.com")
package users

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/plakhov/taskboard/internal/entities"
)

// Username and email bounds mirror the account schema.
const (
	MinUsernameLength = 4
	MaxUsernameLength = 15
	MaxEmailLength    = 254 // RFC 5321 limit
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	ErrNotFound        = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrEmailInvalid    = errors.New("invalid email format")
	ErrUsernameInvalid = errors.New("username must be 4-15 characters")
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user record. Email format and username bounds are
// checked before the insert, email uniqueness by the insert itself; a
// passwordHash may be empty only for OAuth accounts.
func (r *Repository) Create(email, username, passwordHash string, accountType entities.AccountType) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(email) > MaxEmailLength || !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}
	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return nil, ErrUsernameInvalid
	}

	user := &entities.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		AccountType:  accountType,
	}

	// The uniqueIndex on email decides duplicates, so two concurrent
	// signups cannot both slip past a pre-insert lookup. Needs
	// TranslateError on the gorm connection.
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email.
func (r *Repository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
