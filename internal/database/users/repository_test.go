package users

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/plakhov/taskboard/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_users_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.Create("Test@Example.com", "tester", "$2a$10$hash", entities.AccountTypeInternal)

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "test@example.com", user.Email) // Stored lowercase
	assert.Equal(t, "tester", user.Username)
	assert.Equal(t, entities.UserRoleUser, user.Role)
	assert.Equal(t, entities.AccountTypeInternal, user.AccountType)
}

func TestRepository_CreateOAuthAccountWithoutHash(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.Create("oauth@example.com", "tester", "", entities.AccountTypeOAuth)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, entities.AccountTypeOAuth, user.AccountType)
}

func TestRepository_CreateDuplicateEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create("a@b.com", "first", "$2a$10$hash", entities.AccountTypeInternal)
	require.NoError(t, err)

	_, err = repo.Create("A@B.COM", "second", "$2a$10$hash", entities.AccountTypeInternal)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// First record unaffected
	user, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "first", user.Username)
}

func TestRepository_CreateValidation(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	tests := []struct {
		name     string
		email    string
		username string
		wantErr  error
	}{
		{name: "missing at sign", email: "not-an-email", username: "tester", wantErr: ErrEmailInvalid},
		{name: "missing domain", email: "a@", username: "tester", wantErr: ErrEmailInvalid},
		{name: "empty email", email: "", username: "tester", wantErr: ErrEmailInvalid},
		{name: "email too long", email: strings.Repeat("a", 250) + "@b.com", username: "tester", wantErr: ErrEmailInvalid},
		{name: "username too short", email: "a@b.com", username: "abc", wantErr: ErrUsernameInvalid},
		{name: "username too long", email: "a@b.com", username: strings.Repeat("a", 16), wantErr: ErrUsernameInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(tt.email, tt.username, "$2a$10$hash", entities.AccountTypeInternal)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRepository_CreateMultibyteUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// 8 characters but 16 bytes; the bounds count characters
	user, err := repo.Create("a@b.com", "Владимир", "$2a$10$hash", entities.AccountTypeInternal)

	require.NoError(t, err)
	assert.Equal(t, "Владимир", user.Username)
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("a@b.com", "tester", "$2a$10$hash", entities.AccountTypeInternal)
	require.NoError(t, err)

	user, err := repo.GetByEmail("A@B.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = repo.GetByEmail("missing@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_GetByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("a@b.com", "tester", "$2a$10$hash", entities.AccountTypeInternal)
	require.NoError(t, err)

	user, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
