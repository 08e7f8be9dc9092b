// Package constants defines shared domain-level constant values.
package constants

// Pub/Sub provider types selectable in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Consent event types published on state transitions.
const (
	ConsentEventRequested = "consent.requested"
	ConsentEventResponded = "consent.responded"
	ConsentEventRevoked   = "consent.revoked"
)
