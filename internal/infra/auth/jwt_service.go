// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"applyo/config"
	"applyo/internal/domain/entity"
	"applyo/internal/domain/service"
	"applyo/internal/errors"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour

	userTypeClaim = "userType"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
//
// Access tokens are verified against the current secret first and then, if
// present, against the previous secret. This gives the issuer and the gateway
// a rotation window: deploy the new secret as Access with the old one moved
// to AccessPrevious, wait out the access TTL, then clear AccessPrevious.
type jwtService struct {
	accessSecret   string
	accessPrevious string
	refreshSecret  string
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:   cfg.SecretKey.Access,
		accessPrevious: cfg.SecretKey.AccessPrevious,
		refreshSecret:  cfg.SecretKey.Refresh,
		accessTTL:      defaultAccessTTL,
		refreshTTL:     defaultRefreshTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL != 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL != 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

// GenerateAccessToken mints a signed identity token for the given user.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, userType entity.UserType) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         userID.String(),
		"iat":         now.Unix(),
		"exp":         now.Add(s.accessTTL).Unix(),
		userTypeClaim: string(userType),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// GenerateRefreshToken mints a longer-lived token carrying only the subject.
func (s *jwtService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.refreshTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.refreshSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return signed, nil
}

// VerifyAccessToken checks signature, structure and expiry and returns the
// verified identity. Claims are never exposed from a token that failed any
// of the checks.
func (s *jwtService) VerifyAccessToken(tokenString string) (*entity.Identity, error) {
	claims, err := parseWithSecret(tokenString, s.accessSecret)
	if err != nil && s.accessPrevious != "" {
		// Rotation window: tokens signed before the secret change are still
		// accepted until they age out.
		claims, err = parseWithSecret(tokenString, s.accessPrevious)
	}
	if err != nil {
		return nil, err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "token has no subject")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}

	userType, _ := claims[userTypeClaim].(string)
	typed := entity.UserType(userType)
	if !typed.IsValid() {
		return nil, errors.Errorf("unknown user type in token: %q", userType)
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, errors.New("token has no expiry")
	}

	return &entity.Identity{
		UserID:    userID,
		UserType:  typed,
		ExpiresAt: expiry.Time,
	}, nil
}

// VerifyRefreshToken validates a refresh token and returns its subject.
func (s *jwtService) VerifyRefreshToken(tokenString string) (uuid.UUID, error) {
	claims, err := parseWithSecret(tokenString, s.refreshSecret)
	if err != nil {
		return uuid.Nil, err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "token has no subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid subject in token")
	}

	return userID, nil
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// parseWithSecret verifies a token string against a single secret. The jwt
// library validates the expiry claim as part of parsing, so an expired but
// correctly signed token fails here too.
func parseWithSecret(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return claims, nil
}
