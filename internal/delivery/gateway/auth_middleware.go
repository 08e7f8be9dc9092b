// Package gateway implements the edge server that authenticates requests
// and proxies them to the platform services.
package gateway

import (
	"log/slog"
	"net/http"
	"strings"

	"applyo/config"
	"applyo/internal/domain/entity"
	"applyo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Headers the gateway owns on authenticated paths. Client-supplied values
// are discarded there before the request moves on, so a downstream service
// can trust them; exempt paths are public and forwarded as received.
const (
	HeaderAPIKey   = "X-API-Key"
	HeaderUserID   = "X-User-Id"
	HeaderUserType = "X-User-Type"
)

// AuthMiddleware is the gateway's request authentication pipeline. Order per
// request: exemption check, API key hand-off, bearer token verification.
// Everything else is rejected with 401 and no detail about why.
type AuthMiddleware struct {
	tokenSvc       service.TokenService
	exemptPrefixes []string
	logger         *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	exempt := config.DefaultExemptPrefixes()
	if cfg.Gateway != nil && len(cfg.Gateway.ExemptPrefixes) > 0 {
		exempt = cfg.Gateway.ExemptPrefixes
	}

	return &AuthMiddleware{
		tokenSvc:       tokenSvc,
		exemptPrefixes: exempt,
		logger:         logger,
	}
}

// Authenticate runs the gateway authentication decision for one request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		// Exempt requests are forwarded exactly as received, headers and all.
		if m.isExempt(req.URL.Path) {
			return next(c)
		}

		// Everywhere else the gateway owns the identity headers:
		// client-supplied values are dropped before any branch can forward.
		req.Header.Del(HeaderUserID)
		req.Header.Del(HeaderUserType)

		// An API key is a company-service credential. The gateway cannot
		// verify it (only the platform holds the key catalogue), so it is
		// forwarded untouched for the owning service to judge.
		if req.Header.Get(HeaderAPIKey) != "" {
			return next(c)
		}

		identity, ok := m.verifyBearer(req.Header.Get("Authorization"))
		if !ok {
			// Fail closed. The reason stays in the logs, never in the response.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}

		req.Header.Set(HeaderUserID, identity.UserID.String())
		req.Header.Set(HeaderUserType, string(identity.UserType))

		return next(c)
	}
}

// isExempt reports whether the path starts with a configured exempt prefix.
func (m *AuthMiddleware) isExempt(path string) bool {
	for _, prefix := range m.exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// verifyBearer extracts and verifies the bearer token, if any.
func (m *AuthMiddleware) verifyBearer(authHeader string) (*entity.Identity, bool) {
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, false
	}

	verified, err := m.tokenSvc.VerifyAccessToken(tokenString)
	if err != nil {
		m.logger.Debug("Bearer token rejected", slog.Any("error", err))

		return nil, false
	}

	return verified, true
}
