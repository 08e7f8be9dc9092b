package gateway

import (
	"net/http"
	"strings"
	"time"

	"applyo/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Rate limit defaults applied when the configuration leaves them unset.
const (
	defaultRatePerSecond = 10
	defaultBurst         = 20
	defaultExpiresIn     = 3 * time.Minute
)

// rateLimitKey picks the token-bucket key for a request. Precedence: API key,
// then the raw bearer token, then the client IP. The raw credential works as
// a key even before verification; an invalid token burns its own budget, not
// the IP-wide one.
func rateLimitKey(c echo.Context) string {
	if apiKey := c.Request().Header.Get(HeaderAPIKey); apiKey != "" {
		return "key:" + apiKey
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader && token != "" {
		return "bearer:" + token
	}

	return "ip:" + c.RealIP()
}

// NewRateLimiter builds the gateway's per-key token bucket middleware.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	ratePerSecond := float64(defaultRatePerSecond)
	burst := defaultBurst
	expiresIn := defaultExpiresIn

	if cfg.Gateway != nil && cfg.Gateway.RateLimit != nil {
		limit := cfg.Gateway.RateLimit
		if limit.RatePerSecond > 0 {
			ratePerSecond = limit.RatePerSecond
		}
		if limit.Burst > 0 {
			burst = limit.Burst
		}
		if limit.ExpiresIn > 0 {
			expiresIn = limit.ExpiresIn
		}
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(ratePerSecond),
			Burst:     burst,
			ExpiresIn: expiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return rateLimitKey(c), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "identification failed"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
	})
}
