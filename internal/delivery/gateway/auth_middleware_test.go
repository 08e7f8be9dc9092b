package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"applyo/config"
	"applyo/internal/domain/entity"
	mockSvc "applyo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGatewayConfig() *config.Config {
	return &config.Config{
		Gateway: &config.GatewayConfig{
			ExemptPrefixes: []string{"/api/v1/auth/login", "/api/v1/health"},
		},
	}
}

// runAuthMiddleware records the headers that reach the downstream handler.
func runAuthMiddleware(t *testing.T, tokenSvc *mockSvc.MockTokenService, req *http.Request) (*httptest.ResponseRecorder, http.Header) {
	t.Helper()

	e := echo.New()
	middleware := NewAuthMiddleware(tokenSvc, testGatewayConfig(), discardLogger())

	var forwarded http.Header
	e.Use(middleware.Authenticate)
	e.Any("/*", func(c echo.Context) error {
		forwarded = c.Request().Header.Clone()

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, forwarded
}

func TestAuthMiddleware_ExemptPathForwardedUnmodified(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	callerID := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	// Exempt requests pass through exactly as received, identity headers
	// included. The platform treats those paths as public and ignores them.
	req.Header.Set(HeaderUserID, callerID)
	req.Header.Set(HeaderUserType, "COMPANY")

	rec, forwarded := runAuthMiddleware(t, tokenSvc, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, callerID, forwarded.Get(HeaderUserID))
	assert.Equal(t, "COMPANY", forwarded.Get(HeaderUserType))
}

func TestAuthMiddleware_LivenessProbeExemptByDefault(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := echo.New()
	// No exempt prefixes configured: the defaults apply, and they must let a
	// credential-less liveness probe through.
	middleware := NewAuthMiddleware(tokenSvc, &config.Config{}, discardLogger())
	e.Use(middleware.Authenticate)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_APIKeyForwardedUnvetted(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
	req.Header.Set(HeaderAPIKey, "ao_12345678_rawsecret")

	rec, forwarded := runAuthMiddleware(t, tokenSvc, req)

	// The gateway hands off without judging the key; no identity is attached.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ao_12345678_rawsecret", forwarded.Get(HeaderAPIKey))
	assert.Empty(t, forwarded.Get(HeaderUserID))
}

func TestAuthMiddleware_ValidBearerInjectsIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().
		VerifyAccessToken("good-token").
		Return(&entity.Identity{
			UserID:    userID,
			UserType:  entity.UserTypeCandidate,
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/consents/mine", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	// Spoofed values must be overwritten with the verified identity.
	req.Header.Set(HeaderUserID, uuid.NewString())
	req.Header.Set(HeaderUserType, "COMPANY")

	rec, forwarded := runAuthMiddleware(t, tokenSvc, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), forwarded.Get(HeaderUserID))
	assert.Equal(t, "CANDIDATE", forwarded.Get(HeaderUserType))
}

func TestAuthMiddleware_RejectsWithoutLeakingReason(t *testing.T) {
	tests := []struct {
		name  string
		setup func(req *http.Request, tokenSvc *mockSvc.MockTokenService)
	}{
		{
			name:  "no credentials",
			setup: func(_ *http.Request, _ *mockSvc.MockTokenService) {},
		},
		{
			name: "malformed authorization scheme",
			setup: func(req *http.Request, _ *mockSvc.MockTokenService) {
				req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			},
		},
		{
			name: "empty bearer token",
			setup: func(req *http.Request, _ *mockSvc.MockTokenService) {
				req.Header.Set("Authorization", "Bearer ")
			},
		},
		{
			name: "verification failure",
			setup: func(req *http.Request, tokenSvc *mockSvc.MockTokenService) {
				req.Header.Set("Authorization", "Bearer bad-token")
				tokenSvc.EXPECT().
					VerifyAccessToken("bad-token").
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/consents/mine", nil)
			tt.setup(req, tokenSvc)

			rec, _ := runAuthMiddleware(t, tokenSvc, req)

			// Every rejection looks the same from outside.
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		})
	}
}
