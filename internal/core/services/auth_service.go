package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

// dummyPasswordHash is verified against when a login targets an unknown
// email, so response timing does not reveal whether the account exists.
// It never matches any password.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AuthService implements registration, login and refresh-token rotation.
type AuthService struct {
	users      ports.UserRepository
	refresh    ports.RefreshTokenRepository
	tokens     ports.TokenService
	hasher     ports.PasswordHasher
	refreshTTL time.Duration
	logger     *slog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	refresh ports.RefreshTokenRepository,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
	refreshTTL time.Duration,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		refresh:    refresh,
		tokens:     tokens,
		hasher:     hasher,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Register validates the payload, enforces email uniqueness and the password
// policy, and persists the account. The returned user carries only what the
// handler echoes back (email and uuid); the hash never leaves this layer.
func (s *AuthService) Register(ctx context.Context, input domain.UnregisteredUser) (*domain.User, error) {
	if err := validateRegisterBody(input); err != nil {
		return nil, err
	}
	if !validateEmail(input.Email) {
		return nil, domain.NewValidationError("Bad email format")
	}

	exists, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	if !validatePassword(input.Password) {
		return nil, domain.NewValidationError(passwordPolicyMessage)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         "GENERAL",
	}

	// The existence check above is not atomic with the insert; a concurrent
	// registration may still hit the unique constraint, which the repository
	// surfaces as the same ErrEmailExists.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "uuid", user.UUID)
	return user, nil
}

// Login verifies credentials and mints a token pair. Unknown email and wrong
// password are indistinguishable to the caller; a dummy hash is verified for
// unknown emails so response timing does not leak account existence.
func (s *AuthService) Login(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenPair, error) {
	if err := validateLoginBody(creds); err != nil {
		return nil, err
	}
	if !validateEmail(creds.Email) {
		return nil, domain.NewValidationError("Bad email format")
	}

	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	targetHash := dummyPasswordHash
	if user != nil {
		targetHash = user.PasswordHash
	}

	if !s.hasher.Verify(targetHash, creds.Password) || user == nil {
		s.logger.Info("login rejected", "known_user", user != nil)
		return nil, domain.ErrInvalidLogin
	}

	pair, err := s.generateTokenPair(ctx, user.Profile())
	if err != nil {
		return nil, err
	}

	// Best effort: login succeeds even if the stamp fails.
	if err := s.users.UpdateLastLogin(ctx, user.Email, time.Now()); err != nil {
		s.logger.Warn("failed to update last login", "uuid", user.UUID, "error", err)
	}

	return pair, nil
}

// Refresh rotates a refresh token: the presented token must carry a valid
// signature and a jti that is still live, the account must still exist, and
// the jti is revoked before a new pair is issued. Every failure collapses to
// ErrUnauthorized.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	profile, jti, err := s.tokens.Validate(refreshToken, ports.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	record, err := s.refresh.GetByJTI(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if record == nil || record.Revoked || record.ExpiresAt.Before(time.Now()) {
		s.logger.Info("refresh rejected", "jti", jti)
		return nil, domain.ErrUnauthorized
	}

	if err := s.refresh.Revoke(ctx, jti); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	// Re-read the account so deleted users cannot keep refreshing and the
	// new tokens carry the current profile.
	user, err := s.users.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	return s.generateTokenPair(ctx, user.Profile())
}

func (s *AuthService) generateTokenPair(ctx context.Context, profile domain.PublicProfile) (*domain.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, jti, err := s.tokens.IssueRefreshToken(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	record := &domain.RefreshToken{
		UserUUID:  profile.UUID,
		JTI:       jti,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refresh.Store(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
