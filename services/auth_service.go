package services

import (
	stderrors "errors"
	"strings"

	"chatbox/config"
	"chatbox/dto"
	"chatbox/errors"
	"chatbox/models"
	"chatbox/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is verified against when the username does not exist, so the
// unknown-user and wrong-password paths cost the same bcrypt work.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("chatbox.dummy.credential"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "Could not hash password", err)
	}
	return string(hashed), nil
}

// CreateUser registers a new account. The plaintext password is never
// stored; only its bcrypt hash is.
func CreateUser(input dto.SignupInput) (models.User, error) {
	if err := validator.ValidateSignup(&input); err != nil {
		return models.User{}, err
	}

	var existing models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "Username already exists", nil)
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: hashed,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		// Unique-index backstop for a signup racing the pre-check.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "Username already exists", err)
		}
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Could not create user", err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords yield the identical error so callers cannot probe which
// usernames exist.
func Authenticate(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return models.User{}, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, invalidCredentials()
	}

	return user, nil
}

func invalidCredentials() error {
	return errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid username or password", nil)
}
