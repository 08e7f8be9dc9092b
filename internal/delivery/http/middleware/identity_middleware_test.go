package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"applyo/internal/domain/entity"
	mockUC "applyo/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func identityTestServer(t *testing.T, required *entity.UserType) *echo.Echo {
	t.Helper()

	return identityTestServerWithCompanyUC(t, required, mockUC.NewMockCompanyUsecase(t))
}

func identityTestServerWithCompanyUC(t *testing.T, required *entity.UserType, companyUC *mockUC.MockCompanyUsecase) *echo.Echo {
	t.Helper()

	m := NewIdentityMiddleware(companyUC)
	e := echo.New()
	e.Use(m.Resolve)

	group := e.Group("/protected", m.Require)
	if required != nil {
		group.Use(m.RequireUserType(*required))
	}
	group.GET("", func(c echo.Context) error {
		userID, _ := GetUserID(c)

		return c.JSON(http.StatusOK, map[string]string{"user_id": userID.String()})
	})

	e.GET("/open", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestIdentityMiddleware_ResolvesGatewayHeaders(t *testing.T) {
	e := identityTestServer(t, nil)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderUserID, userID.String())
	req.Header.Set(HeaderUserType, "CANDIDATE")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestIdentityMiddleware_AnonymousPassesOpenRoutes(t *testing.T) {
	e := identityTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityMiddleware_RequireRejectsAnonymous(t *testing.T) {
	e := identityTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestIdentityMiddleware_MalformedHeadersRejected(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		userType string
	}{
		{name: "bad uuid", userID: "not-a-uuid", userType: "CANDIDATE"},
		{name: "bad user type", userID: uuid.NewString(), userType: "ADMIN"},
		{name: "missing user type", userID: uuid.NewString(), userType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := identityTestServer(t, nil)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set(HeaderUserID, tt.userID)
			req.Header.Set(HeaderUserType, tt.userType)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "INVALID_IDENTITY")
		})
	}
}

func TestIdentityMiddleware_APIKeyResolvesOwningCompany(t *testing.T) {
	companyID := uuid.New()
	companyUC := mockUC.NewMockCompanyUsecase(t)
	companyUC.EXPECT().
		VerifyAPIKey(mock.Anything, "ao_12345678_rawsecret").
		Return(&entity.APIKey{ID: uuid.New(), CompanyID: companyID, Active: true}, nil)

	e := identityTestServerWithCompanyUC(t, nil, companyUC)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderAPIKey, "ao_12345678_rawsecret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), companyID.String())
}

func TestIdentityMiddleware_InvalidAPIKeyRejected(t *testing.T) {
	companyUC := mockUC.NewMockCompanyUsecase(t)
	companyUC.EXPECT().
		VerifyAPIKey(mock.Anything, "ao_bogus").
		Return(nil, assert.AnError)

	e := identityTestServerWithCompanyUC(t, nil, companyUC)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderAPIKey, "ao_bogus")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_API_KEY")
}

func TestIdentityMiddleware_GatewayIdentityWinsOverAPIKey(t *testing.T) {
	// When the gateway already verified a bearer token, the injected
	// identity is authoritative and the key catalogue is never consulted.
	companyUC := mockUC.NewMockCompanyUsecase(t)
	e := identityTestServerWithCompanyUC(t, nil, companyUC)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderUserID, userID.String())
	req.Header.Set(HeaderUserType, "CANDIDATE")
	req.Header.Set(HeaderAPIKey, "ao_12345678_rawsecret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestIdentityMiddleware_RequireUserType(t *testing.T) {
	company := entity.UserTypeCompany
	e := identityTestServer(t, &company)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderUserID, uuid.NewString())
	req.Header.Set(HeaderUserType, "CANDIDATE")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderUserID, uuid.NewString())
	req.Header.Set(HeaderUserType, "COMPANY")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
