package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulozi/api/internal/core/domain"
)

func TestValidateRegisterBodyFieldOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.UnregisteredUser
		message string
	}{
		{
			"all missing reports first_name first",
			domain.UnregisteredUser{},
			"'first_name' is required",
		},
		{
			"missing last_name",
			domain.UnregisteredUser{FirstName: "Ada"},
			"'last_name' is required",
		},
		{
			"missing email",
			domain.UnregisteredUser{FirstName: "Ada", LastName: "Lovelace"},
			"'email' is required",
		},
		{
			"missing password",
			domain.UnregisteredUser{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
			"'password' is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRegisterBody(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.True(t, domain.IsValidation(err))
		})
	}

	err := validateRegisterBody(domain.UnregisteredUser{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "Abcdef1!",
	})
	assert.NoError(t, err)
}

func TestValidateLoginBody(t *testing.T) {
	err := validateLoginBody(domain.LoginCredentials{})
	require.Error(t, err)
	assert.Equal(t, "'email' is required", err.Error())

	err = validateLoginBody(domain.LoginCredentials{Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, "'password' is required", err.Error())

	assert.NoError(t, validateLoginBody(domain.LoginCredentials{Email: "ada@example.com", Password: "x"}))
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"ada.lovelace@example.co",
		"ada-lovelace@sub.example.org",
		"ada_l@example.io",
	}
	for _, email := range valid {
		assert.True(t, validateEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"ada",
		"ada@",
		"@example.com",
		"ada@example",
		"ada example@example.com",
		"ada@@example.com",
	}
	for _, email := range invalid {
		assert.False(t, validateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"Abcdef1!", true},
		{"Str0ng-enough", true},
		{"abc", false},
		{"abcdefg1!", false}, // no upper
		{"ABCDEFG1!", false}, // no lower
		{"Abcdefgh!", false}, // no digit
		{"Abcdefg12", false}, // no special
		{"Ab1!", false},      // too short
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, validatePassword(tt.password), "password %q", tt.password)
	}
}
