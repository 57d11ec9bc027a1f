package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

// Claims is the JWT payload: the public user profile plus the registered
// claims (jti, iat, exp).
type Claims struct {
	jwt.RegisteredClaims
	User domain.PublicProfile `json:"user"`
}

// TokenService signs and validates access and refresh tokens. The two token
// kinds use distinct HS256 secrets so that compromise of one does not
// compromise the other. Secrets are injected once at construction and never
// change.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) IssueAccessToken(profile domain.PublicProfile) (string, error) {
	token, _, err := s.issue(profile, s.accessSecret, s.accessTTL)
	return token, err
}

func (s *TokenService) IssueRefreshToken(profile domain.PublicProfile) (string, uuid.UUID, error) {
	return s.issue(profile, s.refreshSecret, s.refreshTTL)
}

// Validate parses the token against the secret for kind and returns the
// embedded profile and jti. Wrong-key signatures, malformed tokens, expired
// tokens and unexpected signing methods all fail.
func (s *TokenService) Validate(tokenString string, kind ports.TokenKind) (*domain.PublicProfile, uuid.UUID, error) {
	secret := s.accessSecret
	if kind == ports.RefreshToken {
		secret = s.refreshSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, uuid.Nil, errors.New("invalid token")
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid token id: %w", err)
	}

	return &claims.User, jti, nil
}

func (s *TokenService) issue(profile domain.PublicProfile, secret []byte, ttl time.Duration) (string, uuid.UUID, error) {
	jti := uuid.New()
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		User: profile,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, jti, nil
}
