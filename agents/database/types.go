package database

// Agent identity.
const (
	AgentID   = "database_specialist"
	AgentName = "Database Specialist Agent"
	AgentType = "database"
)

// Task names handled by the database agent.
const (
	TaskDesignSchema        = "design_database_schema"
	TaskGenerateModels      = "generate_orm_models"
	TaskCreateMigrations    = "create_database_migrations"
	TaskOptimizeQueries     = "optimize_database_queries"
	TaskDesignRelationships = "design_relationships"
	TaskValidateIntegrity   = "validate_data_integrity"
	TaskGenerateSeedData    = "generate_seed_data"
)

// Capabilities advertised by the database agent.
var Capabilities = []string{
	TaskDesignSchema,
	TaskGenerateModels,
	TaskCreateMigrations,
	TaskOptimizeQueries,
	TaskDesignRelationships,
	TaskValidateIntegrity,
	TaskGenerateSeedData,
}
