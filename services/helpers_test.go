package services_test

import (
	"path/filepath"
	"testing"

	"chatbox/config"
	"chatbox/dto"
	"chatbox/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway sqlite database and points the package
// global at it for the duration of the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ChatHistory{}))

	config.DB = db
	return db
}

func signupInput(username, password string) dto.SignupInput {
	return dto.SignupInput{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
	}
}
