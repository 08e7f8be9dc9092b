// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving process (HTTP server, gateway) started
// by the application entrypoint and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
