// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup health checks.
const DefaultTimeout = 30 * time.Second
