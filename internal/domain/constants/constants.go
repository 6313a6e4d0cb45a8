// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider names, matched against the pubsub.provider config value.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
