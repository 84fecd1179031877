package entities

import (
	"time"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// AccountType distinguishes locally-registered accounts from OAuth-originated ones.
type AccountType string

const (
	AccountTypeInternal AccountType = "internal"
	AccountTypeOAuth    AccountType = "oauth"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:254" json:"email"`
	Username string `gorm:"size:15" json:"username"`
	// Empty for OAuth-originated accounts; such users cannot log in with a password.
	PasswordHash string      `gorm:"size:100" json:"-"`
	Role         UserRole    `gorm:"size:10;default:'user'" json:"role"`
	AccountType  AccountType `gorm:"size:10;default:'internal'" json:"account_type"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type Todo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:15" json:"title"`
	DueAt     time.Time `json:"due_at"`
	Completed bool      `gorm:"default:false" json:"completed"`
	OwnerID   uint      `gorm:"index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Board struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:15" json:"title"`
	OwnerID   uint      `gorm:"index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	Todos     []Todo    `gorm:"many2many:board_todos;" json:"todos,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
