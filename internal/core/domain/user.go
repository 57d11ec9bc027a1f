package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnregisteredUser is the inbound registration payload. It only ever lives
// for the duration of the request; the plaintext password is never persisted.
type UnregisteredUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginCredentials is the inbound login payload.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the persisted account record. ID and PasswordHash never leave the
// server; clients are identified by UUID.
type User struct {
	ID               int64      `json:"-"`
	UUID             uuid.UUID  `json:"uuid"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Role             string     `json:"role"`
	PasswordVerified bool       `json:"password_verified"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	DateCreated      time.Time  `json:"date_created"`
}

// PublicProfile is the subset of User safe to embed in a token or return to
// a client.
type PublicProfile struct {
	UUID             uuid.UUID  `json:"uuid"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	PasswordVerified bool       `json:"password_verified"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	DateCreated      time.Time  `json:"date_created"`
}

// Profile derives the public view of a user record.
func (u *User) Profile() PublicProfile {
	return PublicProfile{
		UUID:             u.UUID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Role:             u.Role,
		PasswordVerified: u.PasswordVerified,
		LastLogin:        u.LastLogin,
		DateCreated:      u.DateCreated,
	}
}

// TokenPair bundles a short-lived access token with its refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken is the server-side record of an issued refresh token, keyed
// by the jti claim embedded in the signed token. The token string itself is
// never stored.
type RefreshToken struct {
	ID        int64
	UserUUID  uuid.UUID
	JTI       uuid.UUID
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
