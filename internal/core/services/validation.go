package services

import (
	"regexp"
	"unicode"

	"github.com/mulozi/api/internal/core/domain"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

const passwordPolicyMessage = "Poor password strength. Password must contain at least 8 characters, " +
	"an upper-case letter, and a lower-case letter, a number, and a non-alphanumeric character."

// validateRegisterBody checks required registration fields in a fixed order
// and returns a message for the first missing one.
func validateRegisterBody(input domain.UnregisteredUser) error {
	if input.FirstName == "" {
		return domain.NewValidationError("'first_name' is required")
	}
	if input.LastName == "" {
		return domain.NewValidationError("'last_name' is required")
	}
	if input.Email == "" {
		return domain.NewValidationError("'email' is required")
	}
	if input.Password == "" {
		return domain.NewValidationError("'password' is required")
	}
	return nil
}

func validateLoginBody(creds domain.LoginCredentials) error {
	if creds.Email == "" {
		return domain.NewValidationError("'email' is required")
	}
	if creds.Password == "" {
		return domain.NewValidationError("'password' is required")
	}
	return nil
}

func validateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validatePassword enforces the password policy: at least 8 characters with
// an upper-case letter, a lower-case letter, a digit and a non-alphanumeric
// character.
func validatePassword(pass string) bool {
	if len(pass) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range pass {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
