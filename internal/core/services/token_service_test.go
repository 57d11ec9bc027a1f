package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

func newTestTokenService() *TokenService {
	return NewTokenService(
		[]byte("access-secret"),
		[]byte("refresh-secret"),
		15*time.Minute,
		24*time.Hour,
	)
}

func testProfile() domain.PublicProfile {
	lastLogin := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	return domain.PublicProfile{
		UUID:             uuid.New(),
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "ada@example.com",
		Role:             "GENERAL",
		PasswordVerified: true,
		LastLogin:        &lastLogin,
		DateCreated:      time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService()
	profile := testProfile()

	token, err := svc.IssueAccessToken(profile)
	require.NoError(t, err)

	decoded, jti, err := svc.Validate(token, ports.AccessToken)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, jti)

	assert.Equal(t, profile.UUID, decoded.UUID)
	assert.Equal(t, profile.FirstName, decoded.FirstName)
	assert.Equal(t, profile.LastName, decoded.LastName)
	assert.Equal(t, profile.Email, decoded.Email)
	assert.Equal(t, profile.Role, decoded.Role)
	assert.Equal(t, profile.PasswordVerified, decoded.PasswordVerified)
	require.NotNil(t, decoded.LastLogin)
	assert.True(t, profile.LastLogin.Equal(*decoded.LastLogin))
	assert.True(t, profile.DateCreated.Equal(decoded.DateCreated))
}

func TestKeySeparation(t *testing.T) {
	svc := newTestTokenService()
	profile := testProfile()

	access, err := svc.IssueAccessToken(profile)
	require.NoError(t, err)
	refresh, _, err := svc.IssueRefreshToken(profile)
	require.NoError(t, err)

	_, _, err = svc.Validate(access, ports.RefreshToken)
	assert.Error(t, err, "access token must not verify against the refresh key")

	_, _, err = svc.Validate(refresh, ports.AccessToken)
	assert.Error(t, err, "refresh token must not verify against the access key")
}

func TestRefreshTokenJTIRecorded(t *testing.T) {
	svc := newTestTokenService()

	token, jti, err := svc.IssueRefreshToken(testProfile())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, jti)

	_, decodedJTI, err := svc.Validate(token, ports.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jti, decodedJTI)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService([]byte("access-secret"), []byte("refresh-secret"), -time.Minute, -time.Minute)

	token, err := svc.IssueAccessToken(testProfile())
	require.NoError(t, err)

	_, _, err = svc.Validate(token, ports.AccessToken)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestTokenService()

	for _, token := range []string{"", "not.a.token", "a.b", "xxxxx"} {
		_, _, err := svc.Validate(token, ports.AccessToken)
		assert.Error(t, err, "token %q should not validate", token)
	}
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService([]byte("other-access"), []byte("other-refresh"), 15*time.Minute, 24*time.Hour)

	token, err := other.IssueAccessToken(testProfile())
	require.NoError(t, err)

	_, _, err = svc.Validate(token, ports.AccessToken)
	assert.Error(t, err)
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	svc := newTestTokenService()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		User: testProfile(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = svc.Validate(token, ports.AccessToken)
	assert.Error(t, err)
}

func TestValidateRejectsMissingJTI(t *testing.T) {
	svc := newTestTokenService()

	noJTI := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		User: testProfile(),
	})
	token, err := noJTI.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, _, err = svc.Validate(token, ports.AccessToken)
	assert.Error(t, err)
}
