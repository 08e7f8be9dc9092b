package gateway

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"applyo/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRateLimitKey_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name: "api key wins over everything",
			headers: map[string]string{
				HeaderAPIKey:    "ao_12345678_rawsecret",
				"Authorization": "Bearer some-token",
			},
			want: "key:ao_12345678_rawsecret",
		},
		{
			name: "bearer token when no api key",
			headers: map[string]string{
				"Authorization": "Bearer some-token",
			},
			want: "bearer:some-token",
		},
		{
			name: "non-bearer authorization falls through to ip",
			headers: map[string]string{
				"Authorization": "Basic dXNlcjpwYXNz",
			},
			want: "ip:192.0.2.1",
		},
		{
			name:    "ip when no credentials",
			headers: map[string]string{},
			want:    "ip:192.0.2.1",
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, rateLimitKey(c))
		})
	}
}

func TestRateLimiter_DeniesOverBudget(t *testing.T) {
	cfg := &config.Config{
		Gateway: &config.GatewayConfig{
			RateLimit: &config.RateLimitConfig{
				RatePerSecond: 1,
				Burst:         2,
			},
		},
	}

	e := echo.New()
	e.Use(NewRateLimiter(cfg))
	e.GET("/api/v1/applications", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func(apiKey string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
		req.Header.Set(HeaderAPIKey, apiKey)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("key-a"))
	assert.Equal(t, http.StatusOK, do("key-a"))
	assert.Equal(t, http.StatusTooManyRequests, do("key-a"))

	// A different key has its own untouched bucket.
	assert.Equal(t, http.StatusOK, do("key-b"))
}
