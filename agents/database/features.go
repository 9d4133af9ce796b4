package database

import "github.com/genesis-engine/genesis-backend/core/backend"

// Features describes the engine capabilities that shape schema design.
// Schema prompts embed them so generated designs stay within the
// engine's limits.
type Features struct {
	SupportsJSON         bool
	SupportsArrays       bool
	SupportsFullText     bool
	SupportsPartitioning bool
	MaxIndexColumns      int
	DefaultPort          int // zero for file-based engines
}

var databaseFeatures = map[backend.DatabaseType]Features{
	backend.DatabasePostgreSQL: {
		SupportsJSON:         true,
		SupportsArrays:       true,
		SupportsFullText:     true,
		SupportsPartitioning: true,
		MaxIndexColumns:      32,
		DefaultPort:          5432,
	},
	backend.DatabaseMySQL: {
		SupportsJSON:         true,
		SupportsArrays:       false,
		SupportsFullText:     true,
		SupportsPartitioning: true,
		MaxIndexColumns:      16,
		DefaultPort:          3306,
	},
	backend.DatabaseSQLite: {
		SupportsJSON:         true,
		SupportsArrays:       false,
		SupportsFullText:     true,
		SupportsPartitioning: false,
		MaxIndexColumns:      64,
	},
	backend.DatabaseMongoDB: {
		SupportsJSON:         true,
		SupportsArrays:       true,
		SupportsFullText:     true,
		SupportsPartitioning: true,
		MaxIndexColumns:      64,
		DefaultPort:          27017,
	},
}

// FeaturesFor returns the feature set for the given engine. Unknown
// engines return the zero value.
func FeaturesFor(t backend.DatabaseType) Features {
	return databaseFeatures[t]
}
