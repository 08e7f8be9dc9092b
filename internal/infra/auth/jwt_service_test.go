package auth

import (
	"testing"
	"time"

	"applyo/config"
	"applyo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(access, accessPrevious, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.AccessPrevious = accessPrevious
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndVerifyTokens(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, err := jwtService.GenerateAccessToken(userID, entity.UserTypeCandidate)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := jwtService.GenerateRefreshToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	// Verify access token
	identity, err := jwtService.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, entity.UserTypeCandidate, identity.UserType)
	assert.True(t, identity.ExpiresAt.After(time.Now()))

	// Verify refresh token
	subject, err := jwtService.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	identity, err := jwtService.VerifyAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, identity)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(
		"issuer_access_secret_key_very_long_for_testing",
		"",
		"issuer_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	verifier, err := NewJWTService(testConfig(
		"other_access_secret_key_very_long_for_testing",
		"",
		"other_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), entity.UserTypeCompany)
	require.NoError(t, err)

	identity, err := verifier.VerifyAccessToken(token)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTService_SecretRotationWindow(t *testing.T) {
	oldSecret := "old_access_secret_key_very_long_for_testing"
	newSecret := "new_access_secret_key_very_long_for_testing"
	refreshSecret := "test_refresh_secret_key_very_long_for_testing"

	issuer, err := NewJWTService(testConfig(oldSecret, "", refreshSecret))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), entity.UserTypeCandidate)
	require.NoError(t, err)

	// A verifier holding only the new secret rejects the old token.
	strictVerifier, err := NewJWTService(testConfig(newSecret, "", refreshSecret))
	require.NoError(t, err)

	_, err = strictVerifier.VerifyAccessToken(token)
	assert.Error(t, err)

	// A verifier carrying the old secret as AccessPrevious still accepts it.
	rotatingVerifier, err := NewJWTService(testConfig(newSecret, oldSecret, refreshSecret))
	require.NoError(t, err)

	identity, err := rotatingVerifier.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.NotNil(t, identity)
}

func TestJWTService_RefreshTokenNotAcceptedAsAccess(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	refreshToken, err := jwtService.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret and carry no user
	// type, so they must never pass access verification.
	identity, err := jwtService.VerifyAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("", "", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	duration := jwtService.RefreshTokenDuration()
	expectedDuration := time.Hour * 24 * 7 // 7 days
	assert.Equal(t, expectedDuration, duration)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"",
		"test_refresh_secret_key_very_long_for_testing",
	)
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: -time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), entity.UserTypeCandidate)
	require.NoError(t, err)

	identity, err := jwtService.VerifyAccessToken(token)
	assert.Error(t, err)
	assert.Nil(t, identity)
}
