// Package handler contains the HTTP handlers for the platform API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness. The gateway exempts this path, so it
// also serves as the downstream probe target.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
