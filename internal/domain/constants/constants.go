// Package constants holds string identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)
