package validator

import (
	"strings"

	"chatbox/dto"
	"chatbox/errors"
)

const MinPasswordLength = 6

// ValidateSignup checks the signup form before any database work.
// The confirmation check runs first, then the length check, matching the
// order the signup page reports problems in.
func ValidateSignup(input *dto.SignupInput) error {
	input.Username = strings.TrimSpace(input.Username)

	if input.Username == "" || input.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username and password must not be empty", nil)
	}

	if input.ConfirmPassword != "" && input.Password != input.ConfirmPassword {
		return errors.NewAppError(errors.ErrCodePasswordMismatch, "Passwords do not match", nil)
	}

	if len(input.Password) < MinPasswordLength {
		return errors.NewAppError(errors.ErrCodeWeakPassword, "Password must be at least 6 characters long", nil)
	}

	return nil
}
