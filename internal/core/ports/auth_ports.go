package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mulozi/api/internal/core/domain"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the password. Two calls with
	// the same input yield different outputs.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash. A malformed
	// hash counts as a mismatch; callers cannot distinguish the two.
	Verify(hash, password string) bool
}

// TokenKind selects which signing secret a token must verify against.
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

// TokenService issues and validates signed tokens carrying a public profile.
type TokenService interface {
	IssueAccessToken(profile domain.PublicProfile) (string, error)

	// IssueRefreshToken returns the signed token and its jti, which the
	// caller records server-side so the token can be revoked on rotation.
	IssueRefreshToken(profile domain.PublicProfile) (token string, jti uuid.UUID, err error)

	// Validate verifies signature and claims against the secret for kind.
	// Any failure (wrong key, malformed token, expiry) yields an error.
	Validate(token string, kind TokenKind) (*domain.PublicProfile, uuid.UUID, error)
}

// RefreshTokenRepository tracks issued refresh tokens by jti so that a
// rotated token cannot be replayed.
type RefreshTokenRepository interface {
	Store(ctx context.Context, token *domain.RefreshToken) error
	GetByJTI(ctx context.Context, jti uuid.UUID) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, jti uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// AuthService provides registration, login and token refresh.
type AuthService interface {
	// Register validates and creates an account, returning the public
	// identifiers only.
	Register(ctx context.Context, input domain.UnregisteredUser) (*domain.User, error)

	// Login authenticates credentials and mints a token pair. Unknown email
	// and wrong password both yield domain.ErrInvalidLogin.
	Login(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenPair, error)

	// Refresh rotates a valid refresh token into a new token pair. The
	// presented token is revoked and cannot be used again.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}
