// Package constants holds string constants shared across layers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by config.PubSubConfig.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers accepted by config.StorageConfig.Driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Pub/Sub message attribute carrying the event kind.
const (
	EventAttributeType = "event_type"

	EventTypeSearch      = "search.performed"
	EventTypeAppointment = "appointment.changed"
)
