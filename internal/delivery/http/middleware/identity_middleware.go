package middleware

import (
	"applyo/internal/delivery/http/response"
	"applyo/internal/domain/entity"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Headers carrying the verified identity, injected by the gateway after it
// has validated the caller's token. The platform never sees the raw token.
// X-API-Key is the exception: the gateway relays it untouched because only
// this service holds the key catalogue.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserType = "X-User-Type"
	HeaderAPIKey   = "X-API-Key"
)

// Context keys for the resolved identity.
const (
	keyUserID   = "userID"
	keyUserType = "userType"
)

// IdentityMiddleware resolves the caller's identity from the headers the
// gateway injects. The platform listens only on the internal network, so
// these headers are trusted as-is; the gateway already overwrote anything
// the original client sent. Requests carrying an API key instead are
// verified here against the key catalogue and resolve to the owning company.
type IdentityMiddleware struct {
	companyUC usecase.CompanyUsecase
}

// NewIdentityMiddleware creates a new identity middleware.
func NewIdentityMiddleware(companyUC usecase.CompanyUsecase) *IdentityMiddleware {
	return &IdentityMiddleware{companyUC: companyUC}
}

// Resolve parses the identity headers when present and stores them on the
// echo context; an API key resolves to its owning company instead. Requests
// without either pass through anonymously; route groups that need an
// identity add Require on top.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawID := c.Request().Header.Get(HeaderUserID)
		if rawID == "" {
			if rawKey := c.Request().Header.Get(HeaderAPIKey); rawKey != "" {
				return m.resolveAPIKey(c, next, rawKey)
			}

			return next(c)
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			return response.Unauthorized(c, "INVALID_IDENTITY", "Malformed identity header")
		}

		userType := entity.UserType(c.Request().Header.Get(HeaderUserType))
		if !userType.IsValid() {
			return response.Unauthorized(c, "INVALID_IDENTITY", "Malformed identity header")
		}

		c.Set(keyUserID, userID)
		c.Set(keyUserType, userType)

		return next(c)
	}
}

// resolveAPIKey is the owning-service half of the API-key contract: the
// gateway forwarded the raw key untouched, this service decides.
func (m *IdentityMiddleware) resolveAPIKey(c echo.Context, next echo.HandlerFunc, rawKey string) error {
	key, err := m.companyUC.VerifyAPIKey(c.Request().Context(), rawKey)
	if err != nil {
		return response.Unauthorized(c, "INVALID_API_KEY", "Invalid API key")
	}

	c.Set(keyUserID, key.CompanyID)
	c.Set(keyUserType, entity.UserTypeCompany)

	return next(c)
}

// Require rejects requests that did not arrive with a resolved identity.
func (m *IdentityMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		return next(c)
	}
}

// RequireUserType is a middleware factory restricting a route group to one
// account kind. It must be used AFTER Require.
func (m *IdentityMiddleware) RequireUserType(required entity.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, ok := GetUserType(c)
			if !ok || userType != required {
				return response.Forbidden(c, "FORBIDDEN", "Access denied")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated caller's user ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetUserType returns the authenticated caller's account kind, if any.
func GetUserType(c echo.Context) (entity.UserType, bool) {
	userType, ok := c.Get(keyUserType).(entity.UserType)

	return userType, ok
}
